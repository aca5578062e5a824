package diag

import (
	"bytes"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Run("container not supported", func(t *testing.T) {
		d := ContainerNotSupported("Helper")
		require.Equal(t, ContainerNotSupportedID, d.ID)
		require.Equal(t, SeverityError, d.Severity)
		require.Equal(t, "Helper", d.Container)
		require.Contains(t, d.Message, `"Helper"`)
	})

	t.Run("property type not supported", func(t *testing.T) {
		d := PropertyTypeNotSupported("Helper", "Value", "chan int")
		require.Equal(t, PropertyTypeNotSupportedID, d.ID)
		require.Equal(t, SeverityError, d.Severity)
		require.Equal(t, `the type "chan int" of property "Value" is not supported`, d.Message)
		require.Equal(t, "error PS0002: "+d.Message, d.String())
	})

	t.Run("positioned", func(t *testing.T) {
		d := DirectiveInvalid("Helper", "unknown record \"Nope\"", Position{File: "models.go", Line: 4, Column: 1})
		require.Equal(t, SeverityWarning, d.Severity)
		require.Equal(t, `models.go:4:1: warning PS0003: unknown record "Nope"`, d.String())

		moved := ContainerNotSupported("Helper").At(Position{File: "a.go", Line: 2})
		require.Equal(t, "a.go:2", moved.Pos.String())
	})
}

func TestCollector(t *testing.T) {
	t.Run("concurrent reports are all kept", func(t *testing.T) {
		var c Collector
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Report(PropertyTypeNotSupported("Helper", "Value", "chan int"))
			}()
		}
		wg.Wait()
		require.Equal(t, 50, c.Len())
		require.True(t, c.HasErrors())
	})

	t.Run("diagnostics are sorted", func(t *testing.T) {
		var c Collector
		c.Report(PropertyTypeNotSupported("B", "Y", "bool"))
		c.Report(PropertyTypeNotSupported("A", "Z", "bool"))
		c.Report(ContainerNotSupported("A"))
		got := c.Diagnostics()
		require.Len(t, got, 3)
		require.Equal(t, ContainerNotSupportedID, got[0].ID)
		require.Equal(t, "Z", got[1].Property)
		require.Equal(t, "B", got[2].Container)
	})

	t.Run("warnings alone are not errors", func(t *testing.T) {
		var c Collector
		c.Report(DirectiveInvalid("Helper", "bad", Position{}))
		require.False(t, c.HasErrors())
	})

	t.Run("discard", func(t *testing.T) {
		Discard.Report(ContainerNotSupported("X"))
	})
}

func TestWrite(t *testing.T) {
	diags := []Diagnostic{
		ContainerNotSupported("Helper"),
		PropertyTypeNotSupported("Helper", "Value", "chan int").At(Position{File: "m.go", Line: 9, Column: 2}),
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatText, diags))
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)
		require.Equal(t, `m.go:9:2: error PS0002: the type "chan int" of property "Value" is not supported`, string(lines[1]))
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, diags))
		var got []Diagnostic
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Equal(t, diags, got)
	})

	t.Run("json empty is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, nil))
		require.JSONEq(t, "[]", buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		require.Error(t, Write(&bytes.Buffer{}, Format("xml"), diags))
	})
}
