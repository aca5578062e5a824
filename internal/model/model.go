// Package model is the in-memory description of what propsetgen generates:
// which container hosts which record types, and the ordered properties of
// each record.
//
// A model is built once per run by Build and never mutated afterwards, so it
// can be shared freely between goroutines.
package model

import "go/token"

// Container is the type that hosts the generated SetProperty methods.
type Container struct {
	Name        string
	Exported    bool   // declared accessibility; drives the method name case
	Package     string // package clause of the generated file
	PackagePath string // import path of Package, empty if unknown

	// Partial reports whether methods can be declared on the container: a
	// defined, non-alias type of the generated package that is neither a
	// pointer nor an interface.
	Partial bool
	// Static reports whether the container carries no state (struct{}).
	Static bool

	Bindings []RecordBinding
	Pos      token.Position // declaration site, when known
}

// Valid reports whether code can be generated for c.
func (c *Container) Valid() bool { return c.Partial && c.Static }

// RecordBinding binds one record type to a container.
type RecordBinding struct {
	Record      string
	Namespace   string // import path when the record lives outside the container's package
	PackageName string // qualifier used with Namespace
	Policy      Policy
	Properties  []Property
}

// Qualified returns the record type as written in the generated file.
func (b RecordBinding) Qualified() string {
	if b.Namespace == "" {
		return b.Record
	}
	return b.PackageName + "." + b.Record
}

// Property is a record field eligible for assignment by name.
type Property struct {
	Name string
	Type TypeRef
	Pos  token.Position
}
