package diag

import (
	"cmp"
	"slices"
	"sync"
)

// Sink receives diagnostics. Implementations must be safe for concurrent
// use; no ordering between reports is implied.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector is an append-only Sink that keeps everything reported to it.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a sorted copy of the collected diagnostics, so the
// result does not depend on the order concurrent reporters ran in.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	out := slices.Clone(c.diags)
	c.mu.Unlock()
	slices.SortStableFunc(out, compare)
	return out
}

// HasErrors reports whether an error-severity diagnostic was collected.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

func compare(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Pos.File, b.Pos.File),
		cmp.Compare(a.Pos.Line, b.Pos.Line),
		cmp.Compare(a.Pos.Column, b.Pos.Column),
		cmp.Compare(a.Container, b.Container),
		cmp.Compare(a.Property, b.Property),
		cmp.Compare(a.ID, b.ID),
		cmp.Compare(a.Message, b.Message),
	)
}
