package invalid

// Broken cannot host methods through a value receiver of an empty struct.
//
//propset:bind Record
type Broken int

//propset:bind Missing
//propset:bind Record unknown=maybe
//propset:bind Number
//propset:bind fmt.Stringer
//propset:bind Pair
type Warned struct{}

type Record struct {
	Name string
}

type Number int

type Pair[T any] struct {
	A, B T
}
