package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	require.NoError(t, ensureTemplates())
	tmpl := mustTemplates()
	for _, name := range []string{tmplFile, tmplMethod, tmplArm, "arm_panic", "arm_numberNullable"} {
		require.NotNil(t, tmpl.Lookup(name), name)
	}
}
