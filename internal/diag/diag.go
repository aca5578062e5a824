// Package diag defines the diagnostics raised while generating code and the
// sinks that collect them.
//
// Diagnostics are data: the generator reports them and keeps going, and the
// caller decides how to surface them and whether they fail the build.
package diag

import (
	"fmt"
	"go/token"
)

// ID is the stable identifier of a diagnostic kind.
type ID string

const (
	// ContainerNotSupportedID: the container cannot host generated methods.
	ContainerNotSupportedID ID = "PS0001"
	// PropertyTypeNotSupportedID: a property type was not recognised under
	// the error policy.
	PropertyTypeNotSupportedID ID = "PS0002"
	// DirectiveInvalidID: a //propset:bind directive could not be used.
	DirectiveInvalidID ID = "PS0003"
)

// Severity of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Position locates a diagnostic in source. The zero value means unknown.
type Position struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// IsValid reports whether the position carries a file.
func (p Position) IsValid() bool { return p.File != "" }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Diagnostic is one reported problem. Container, Property and Type carry the
// message parameters; Message is derived from them at construction.
type Diagnostic struct {
	ID        ID       `json:"id"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	Container string   `json:"container,omitempty"`
	Property  string   `json:"property,omitempty"`
	Type      string   `json:"type,omitempty"`
	Pos       Position `json:"pos"`
}

func (d Diagnostic) String() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s %s: %s", d.Pos, d.Severity, d.ID, d.Message)
	}
	return fmt.Sprintf("%s %s: %s", d.Severity, d.ID, d.Message)
}

// ContainerNotSupported is raised when a container is not an empty struct
// type declared in the generated package.
func ContainerNotSupported(container string) Diagnostic {
	return Diagnostic{
		ID:        ContainerNotSupportedID,
		Severity:  SeverityError,
		Message:   fmt.Sprintf("container type %q must be a defined empty struct type declared in this package", container),
		Container: container,
	}
}

// PropertyTypeNotSupported is raised for a property whose type has no
// parsing strategy while its binding uses the error policy.
func PropertyTypeNotSupported(container, property, typ string) Diagnostic {
	return Diagnostic{
		ID:        PropertyTypeNotSupportedID,
		Severity:  SeverityError,
		Message:   fmt.Sprintf("the type %q of property %q is not supported", typ, property),
		Container: container,
		Property:  property,
		Type:      typ,
	}
}

// DirectiveInvalid is raised by the source adapter for a directive it has to
// ignore.
func DirectiveInvalid(container, reason string, pos Position) Diagnostic {
	return Diagnostic{
		ID:        DirectiveInvalidID,
		Severity:  SeverityWarning,
		Message:   reason,
		Container: container,
		Pos:       pos,
	}
}

// At returns d located at pos.
func (d Diagnostic) At(pos Position) Diagnostic {
	d.Pos = pos
	return d
}

// PositionOf converts a go/token position.
func PositionOf(p token.Position) Position {
	return Position{File: p.Filename, Line: p.Line, Column: p.Column}
}
