package management

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*Command, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCommand(&buf), &buf
}

func TestWriteMapping(t *testing.T) {
	cmd, buf := newTestCommand()

	cmd.WriteMapping(map[string]any{"port": 8080, "env": "development"}, false)

	assert.Equal(t, "env : development\nport : 8080\n", buf.String())
}

func TestWriteMapping_TrailingNewline(t *testing.T) {
	cmd, buf := newTestCommand()

	cmd.WriteMapping(map[string]any{"a": 1}, true)

	assert.Equal(t, "a : 1\n\n", buf.String())
}

func TestWriteItems(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		want   string
	}{
		{"repr quotes strings", Repr, "\"a\"\n1\n"},
		{"str prints plain values", Str, "a\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()

			err := cmd.WriteItems([]any{"a", 1}, StyleSQLKeyword, tt.method)

			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteItems_InvalidMethod(t *testing.T) {
	cmd, buf := newTestCommand()

	err := cmd.WriteItems([]any{"a"}, "", Method(0))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "repr or str")
	assert.Empty(t, buf.String())
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("STR")
	require.NoError(t, err)
	assert.Equal(t, Str, m)

	m, err = ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, Repr, m)

	_, err = ParseMethod("len")
	assert.Error(t, err)
}

func TestShowStyles(t *testing.T) {
	cmd, buf := newTestCommand()

	cmd.ShowStyles()

	out := buf.String()
	assert.Contains(t, out, "Available styles:")
	assert.Contains(t, out, "End styles:")

	for _, name := range Names() {
		assert.Contains(t, out, `Style.Render("`+name+`")`)
	}
}

func TestStyleRender_UnknownName(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.Equal(t, "plain", cmd.Style.Render("NOPE", "plain"))
}

func TestRule(t *testing.T) {
	cmd, buf := newTestCommand()

	cmd.Rule("-")

	assert.Equal(t, strings.Repeat("-", defaultWidth)+"\n", buf.String())
}

func TestWidth_NonTerminal(t *testing.T) {
	assert.Equal(t, defaultWidth, Width(&bytes.Buffer{}))
}
