package generator

import (
	"embed"
	"fmt"
	"sync"
	"text/template"
)

const (
	tmplFile   = "file"
	tmplMethod = "method"
	tmplArm    = "arm"
)

const (
	templatePattern     = "templates/*.gtpl"
	templateArmsPattern = "templates/arms/*.gtpl"
)

//go:embed templates/*.gtpl templates/arms/*.gtpl
var templatesFS embed.FS

var (
	fileTmpl     *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// validateTemplates ensures all required templates are defined
func validateTemplates() error {
	for _, name := range []string{tmplFile, tmplMethod, tmplArm} {
		if fileTmpl.Lookup(name) == nil {
			return fmt.Errorf("required template %q not found", name)
		}
	}

	// Every arm kind needs an arm_<kind> template (keeps arm.gtpl in sync with the IR).
	requiredArmKinds := []string{
		armKindTime,
		armKindTimeNullable,
		armKindNumber,
		armKindNumberNullable,
		armKindString,
		armKindStringNullable,
		armKindFalse,
		armKindPanic,
	}
	for _, kind := range requiredArmKinds {
		name := "arm_" + kind
		if fileTmpl.Lookup(name) == nil {
			return fmt.Errorf("required arm template %q for kind %q not found", name, kind)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplFile).ParseFS(templatesFS, templatePattern, templateArmsPattern)
		if tmplInitErr != nil {
			return
		}
		fileTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}

func mustTemplates() *template.Template {
	if err := ensureTemplates(); err != nil {
		panic(fmt.Sprintf("propset: templates: %v", err))
	}
	return fileTmpl
}
