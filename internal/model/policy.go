package model

import "fmt"

// Policy selects what generated code does with a property whose type is not
// recognised.
type Policy int

const (
	// PolicySkip leaves the property out of the dispatch switch.
	PolicySkip Policy = iota
	// PolicyThrow emits an arm that panics with *convert.UnsupportedTypeError.
	PolicyThrow
	// PolicyError reports a PS0002 diagnostic and emits an arm returning false.
	PolicyError
)

// DefaultPolicy applies when a binding does not name one.
const DefaultPolicy = PolicyError

var policyNames = [...]string{
	PolicySkip:  "skip",
	PolicyThrow: "throw",
	PolicyError: "error",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy maps the textual form used in directives and model files.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if name == s {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q (want skip, throw or error)", s)
}

// UnmarshalText lets Policy be decoded from YAML and flags.
func (p *Policy) UnmarshalText(b []byte) error {
	v, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (p Policy) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(policyNames) {
		return nil, fmt.Errorf("invalid policy %d", int(p))
	}
	return []byte(p.String()), nil
}
