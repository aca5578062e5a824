package generator

import (
	"github.com/calumari/propset/internal/diag"
	"github.com/calumari/propset/internal/model"
)

// emitter holds transient state while building the IR of one container.
type emitter struct {
	c       *model.Container
	sink    diag.Sink
	imports *importSet
	debug   bool
}

// buildMethodModel models the dispatch method of one binding.
func (e *emitter) buildMethodModel(b model.RecordBinding) methodModel {
	if b.Namespace != "" {
		// the import plan may alias the package
		b.PackageName = e.imports.use(b.Namespace, b.PackageName)
		if b.PackageName == "" {
			b.Namespace = ""
		}
	}
	mm := methodModel{
		Name:     methodName(e.c.Exported, b.Record),
		Receiver: e.c.Name,
		Record:   b.Qualified(),
	}
	for _, p := range b.Properties {
		if arm, ok := e.buildArm(b, p); ok {
			mm.Arms = append(mm.Arms, arm)
		}
	}
	return mm
}

// buildArm chooses the switch arm for a property. ok is false when the
// property is left to the default arm.
func (e *emitter) buildArm(b model.RecordBinding, p model.Property) (armNode, bool) {
	cl := Classify(p.Type)
	arm := armNode{Property: p.Name, Type: p.Type.String(), Strategy: cl.Strategy.String(), Debug: e.debug}
	if cl.Nullable && cl.Strategy != StrategyUnrecognized {
		arm.Strategy += ", nullable"
	}

	if cl.Strategy == StrategyUnrecognized {
		switch b.Policy {
		case model.PolicySkip:
			return armNode{}, false
		case model.PolicyThrow:
			e.imports.use(convertPath, "convert")
			arm.Kind = armKindPanic
		default:
			e.sink.Report(diag.PropertyTypeNotSupported(e.c.Name, p.Name, p.Type.String()).At(diag.PositionOf(p.Pos)))
			arm.Kind = armKindFalse
		}
		return arm, true
	}

	e.imports.use(convertPath, "convert")
	arm.Elem = cl.Element.Format(e.imports.qualifier)
	switch {
	case cl.Strategy == StrategyTemporal && cl.Nullable:
		arm.Kind = armKindTimeNullable
	case cl.Strategy == StrategyTemporal:
		arm.Kind = armKindTime
	case cl.Strategy == StrategyNumeric && cl.Nullable:
		arm.Kind = armKindNumberNullable
	case cl.Strategy == StrategyNumeric:
		arm.Kind = armKindNumber
	case cl.Strategy == StrategyText && cl.Nullable:
		arm.Kind = armKindStringNullable
	default:
		arm.Kind = armKindString
	}
	return arm, true
}
