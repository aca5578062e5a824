package model

import "go/token"

// ContainerDecl is the container half of a declaration snapshot, as supplied
// by an adapter.
type ContainerDecl struct {
	Name        string
	Exported    bool
	Package     string
	PackagePath string
	Partial     bool
	Static      bool
	Pos         token.Position
}

// BindingDecl is one binding declaration. A nil Policy means the default.
type BindingDecl struct {
	Record      string
	Namespace   string
	PackageName string
	Policy      *Policy
	Properties  []Property
}

// Build assembles the container model from its declarations. Bindings keep
// declaration order; a binding naming a record that is already bound is
// dropped, whatever its policy. No validation happens here.
func Build(c ContainerDecl, bindings []BindingDecl) *Container {
	out := &Container{
		Name:        c.Name,
		Exported:    c.Exported,
		Package:     c.Package,
		PackagePath: c.PackagePath,
		Partial:     c.Partial,
		Static:      c.Static,
		Pos:         c.Pos,
	}
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if seen[b.Record] {
			continue
		}
		seen[b.Record] = true

		policy := DefaultPolicy
		if b.Policy != nil {
			policy = *b.Policy
		}
		props := make([]Property, len(b.Properties))
		copy(props, b.Properties)
		out.Bindings = append(out.Bindings, RecordBinding{
			Record:      b.Record,
			Namespace:   b.Namespace,
			PackageName: b.PackageName,
			Policy:      policy,
			Properties:  props,
		})
	}
	return out
}
