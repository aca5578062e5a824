// Package convert holds the parse-and-assign primitives called by code that
// propsetgen generates.
//
// Every primitive parses a textual value, hands the typed result to a setter
// callback and reports whether both steps succeeded. A nil *string is the
// absent value: the Nullable variants pass nil straight to the setter, the
// others report false without calling it.
//
// Nothing here inspects the target record at run time. The record type and
// field are fixed when the code is generated; only the element type is a
// type parameter.
package convert
