package convert

import "fmt"

// UnsupportedTypeError is the panic value of a generated setter whose
// property type could not be classified and whose binding asked for a
// run-time failure (unknown=throw).
type UnsupportedTypeError struct {
	Property string
	Type     string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("the type '%s' in property '%s' is not supported", e.Type, e.Property)
}
