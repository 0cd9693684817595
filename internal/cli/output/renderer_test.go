package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode OutputMode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"text", ModeText},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"json", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"html", ModeAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mode(tt.in), tt.in)
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on terminal", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit json on terminal", ModeJSON, true, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.isTTY, r.IsTTY())
		})
	}
}

func TestRenderer_NewRendererDetectsBuffer(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_Header(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header(2, "Structure")
	assert.Equal(t, "## Structure\n\n", out.String())

	r, out, _ = newTestRenderer(ModeText, false)
	r.Header(2, "Structure")
	assert.Equal(t, "Structure\n", out.String())
}

func TestRenderer_Lines(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, false)

	r.Success("done")
	r.Warning("careful")
	r.Muted("quiet")
	r.Error("broken")

	assert.Equal(t, "✓ done\n! careful\nquiet\n", out.String())
	assert.Equal(t, "✗ broken\n", errOut.String())
}

func TestRenderer_JSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]int{"errors": 2}))
	assert.Equal(t, "{\n  \"errors\": 2\n}\n", out.String())
}

func TestTable(t *testing.T) {
	header := []string{"Column", "Type"}
	rows := [][]string{{"variable name", "string"}}

	var md bytes.Buffer
	Table(&md, header, rows, true)
	assert.Contains(t, md.String(), "| Column | Type |")
	assert.Contains(t, md.String(), "| variable name | string |")

	var box bytes.Buffer
	Table(&box, header, rows, false)
	assert.Contains(t, box.String(), "variable name")
	assert.True(t, strings.HasPrefix(box.String(), "┌"), "light style table expected, got %q", box.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "- **Summary**: ok", FormatKeyValue("Summary", "ok"))
}
