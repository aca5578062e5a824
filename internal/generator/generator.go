package generator

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/calumari/propset/internal/diag"
	"github.com/calumari/propset/internal/model"
)

// File is one generated source unit.
type File struct {
	Name      string // stable file name derived from the container name
	Container string
	Source    []byte
	// FormatErr is set when gofmt rejected the output; Source then holds
	// the unformatted text.
	FormatErr error
}

// Emit generates the dispatch methods of c. It returns false, after
// reporting PS0001, when c cannot host methods. Unsupported property types
// are reported to sink according to their binding's policy and never stop
// emission. Emit keeps no state between calls and is safe to run
// concurrently for different containers.
func Emit(c *model.Container, sink diag.Sink, opts EmitOptions) (*File, bool) {
	if sink == nil {
		sink = diag.Discard
	}
	if !c.Valid() {
		sink.Report(diag.ContainerNotSupported(c.Name).At(diag.PositionOf(c.Pos)))
		return nil, false
	}

	e := &emitter{c: c, sink: sink, imports: newImportSet(c.PackagePath), debug: opts.Debug}
	data := fileModel{Package: c.Package, Command: opts.Command, Version: opts.Version}
	for _, b := range c.Bindings {
		data.Methods = append(data.Methods, e.buildMethodModel(b))
	}
	data.StdImports, data.Imports = e.imports.models()

	var out bytes.Buffer
	if err := mustTemplates().ExecuteTemplate(&out, tmplFile, data); err != nil {
		// templates are embedded and validated; a failure here is a bug
		panic(fmt.Sprintf("propset: render %s: %v", c.Name, err))
	}
	f := &File{Name: fileNameFor(c.Name), Container: c.Name}
	formatted, err := format.Source(out.Bytes())
	if err != nil {
		f.Source = out.Bytes()
		f.FormatErr = err
		return f, true
	}
	f.Source = formatted
	return f, true
}
