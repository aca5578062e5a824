package diag

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Format selects how diagnostics are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Write renders diags to w, one line per diagnostic for text and a single
// array for JSON.
func Write(w io.Writer, format Format, diags []Diagnostic) error {
	switch format {
	case FormatJSON:
		if diags == nil {
			diags = []Diagnostic{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(diags)
	case FormatText, "":
		for _, d := range diags {
			if _, err := fmt.Fprintln(w, d.String()); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown diagnostics format %q", format)
}
