package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/calumari/propset/internal/diag"
	"github.com/calumari/propset/internal/model"
)

const testdataPath = "github.com/calumari/propset/internal/generator/testdata"

func propertyNames(props []model.Property) []string {
	var names []string
	for _, p := range props {
		names = append(names, p.Name)
	}
	return names
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()

	t.Run("container with local and imported records", func(t *testing.T) {
		var sink diag.Collector
		cs, err := Load(ctx, Config{Dir: "testdata/basic"}, &sink)
		require.NoError(t, err)
		require.Zero(t, sink.Len(), sink.Diagnostics())
		require.Len(t, cs, 1)

		h := cs[0]
		require.Equal(t, "Helper", h.Name)
		require.Equal(t, "basic", h.Package)
		require.Equal(t, testdataPath+"/basic", h.PackagePath)
		require.True(t, h.Exported)
		require.True(t, h.Valid())
		require.Equal(t, "models.go", filepath.Base(h.Pos.Filename))

		require.Len(t, h.Bindings, 3)
		my, book, other := h.Bindings[0], h.Bindings[1], h.Bindings[2]

		require.Equal(t, "MyObject", my.Record)
		require.Empty(t, my.Namespace)
		require.Equal(t, model.PolicyError, my.Policy)
		require.Equal(t, []string{"Id", "Name", "Value", "Created", "note"}, propertyNames(my.Properties))
		require.Equal(t, "time.Time", my.Properties[3].Type.String())

		require.Equal(t, "Book", book.Record)
		require.Equal(t, testdataPath+"/records", book.Namespace)
		require.Equal(t, "records", book.PackageName)
		require.Equal(t, model.PolicySkip, book.Policy)
		require.Equal(t, []string{"Title", "Pages", "Price", "Authors"}, propertyNames(book.Properties))
		money := model.Basic("float64")
		want := model.PointerTo(model.Named(testdataPath+"/records", "records", "Money", &money))
		if diff := cmp.Diff(want, book.Properties[2].Type); diff != "" {
			t.Fatalf("Price type mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, model.PolicyThrow, other.Policy)
		require.Equal(t, []string{"Comment", "DateTime", "Tags"}, propertyNames(other.Properties))
		require.Equal(t, "map[string]string", other.Properties[2].Type.String())
	})

	t.Run("invalid containers and directives", func(t *testing.T) {
		var sink diag.Collector
		cs, err := Load(ctx, Config{Dir: "testdata/invalid"}, &sink)
		require.NoError(t, err)
		require.Len(t, cs, 2)

		broken, warned := cs[0], cs[1]
		require.Equal(t, "Broken", broken.Name)
		require.True(t, broken.Partial)
		require.False(t, broken.Static)
		require.False(t, broken.Valid())
		require.Len(t, broken.Bindings, 1)

		require.Equal(t, "Warned", warned.Name)
		require.True(t, warned.Valid())
		require.Empty(t, warned.Bindings)

		diags := sink.Diagnostics()
		require.Len(t, diags, 5)
		var messages []string
		for _, d := range diags {
			require.Equal(t, diag.DirectiveInvalidID, d.ID)
			require.Equal(t, diag.SeverityWarning, d.Severity)
			require.Equal(t, "Warned", d.Container)
			require.Equal(t, "models.go", filepath.Base(d.Pos.File))
			messages = append(messages, d.Message)
		}
		wantMessages := []string{
			"unknown record type Missing",
			`unknown policy "maybe" (want skip, throw or error)`,
			"record Number is not a struct type",
			`no imported package "fmt" for record fmt.Stringer`,
			"record Pair is generic",
		}
		if diff := cmp.Diff(wantMessages, messages, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("messages mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("container filter", func(t *testing.T) {
		cs, err := Load(ctx, Config{Dir: "testdata/invalid", Containers: []string{"Warned"}}, diag.Discard)
		require.NoError(t, err)
		require.Len(t, cs, 1)
		require.Equal(t, "Warned", cs[0].Name)

		_, err = Load(ctx, Config{Dir: "testdata/invalid", Containers: []string{"Warned", "Nope", "Other"}}, diag.Discard)
		require.EqualError(t, err, "containers not found: Nope, Other")
	})

	t.Run("broken package fails to load", func(t *testing.T) {
		dir := t.TempDir()
		writeModule(t, dir, map[string]string{"models.go": "package tmp\n\nfunc (\n"})
		_, err := Load(ctx, Config{Dir: dir}, diag.Discard)
		require.Error(t, err)
	})

	t.Run("type errors do not stop discovery", func(t *testing.T) {
		dir := t.TempDir()
		writeModule(t, dir, map[string]string{"models.go": "package tmp\n\n//propset:bind Record\ntype Helper struct{}\n\ntype Record struct{ Name string }\n\nvar x int = \"no\"\n"})
		cs, err := Load(ctx, Config{Dir: dir}, diag.Discard)
		require.NoError(t, err)
		require.Len(t, cs, 1)
		require.Equal(t, []string{"Name"}, propertyNames(cs[0].Bindings[0].Properties))
	})
}

func TestStaleOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helper_propset.go"), []byte(generatedMarker+"\n\npackage tmp\n\nfunc broken( {\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.go"), []byte("package tmp\n"), 0o600))

	overlay, err := staleOverlay(dir)
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{
		filepath.Join(dir, "helper_propset.go"): []byte("package tmp\n"),
	}, overlay)
}

// writeModule lays out a standalone module so that go/packages can load it
// outside this repository.
func writeModule(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	t.Setenv("GOWORK", "off")
	t.Setenv("GOFLAGS", "-mod=mod")
	files["go.mod"] = "module example.com/tmp\n\ngo 1.22\n"
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600))
	}
}
