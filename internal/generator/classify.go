package generator

import "github.com/calumari/propset/internal/model"

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy

// Strategy is how a textual value is converted for a property.
type Strategy int

const (
	StrategyUnrecognized Strategy = iota
	StrategyTemporal
	StrategyNumeric
	StrategyText
)

// Classification is the outcome of Classify.
type Classification struct {
	Strategy Strategy
	Nullable bool
	// Element is the type the parser produces: the declared type with the
	// nullable pointer removed.
	Element model.TypeRef
}

var numericNames = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true,
}

// Classify maps a declared property type to its parsing strategy. It never
// fails: types without a strategy are StrategyUnrecognized.
//
// A single pointer level marks the property nullable. The numeric set
// mirrors convert.Number, including named types over those basic types.
func Classify(t model.TypeRef) Classification {
	var c Classification
	if t.Kind == model.KindPointer && t.Elem != nil {
		c.Nullable = true
		t = *t.Elem
	}
	c.Element = t

	switch {
	case isTime(t):
		c.Strategy = StrategyTemporal
	case numericNames[basicOf(t)]:
		c.Strategy = StrategyNumeric
	case basicOf(t) == "string":
		c.Strategy = StrategyText
	default:
		c.Strategy = StrategyUnrecognized
	}
	return c
}

func isTime(t model.TypeRef) bool {
	return t.Kind == model.KindNamed && t.Pkg == "time" && t.Name == "Time"
}

// basicOf returns the name of the basic type behind t, or "".
func basicOf(t model.TypeRef) string {
	switch t.Kind {
	case model.KindBasic:
		return t.Name
	case model.KindNamed:
		if t.Underlying != nil && t.Underlying.Kind == model.KindBasic {
			return t.Underlying.Name
		}
	}
	return ""
}
