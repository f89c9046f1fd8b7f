package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string
	Count  int
	hidden bool
}

func (s sample) Greeting() string { return "hi " + s.Name }

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf), &buf
}

func TestLabel(t *testing.T) {
	p, buf := newTestPrinter()

	p.Label("DATA", "=", 3, "white", "green")

	// a bytes.Buffer is not a terminal, so no escape codes are emitted
	assert.Equal(t, "=== DATA ===\n", buf.String())
}

func TestSymbols(t *testing.T) {
	p, buf := newTestPrinter()

	p.Symbols("-", 5, "red")
	p.Symbols("", 2, "red")

	assert.Equal(t, "-----\n==\n", buf.String())
}

func TestData(t *testing.T) {
	p, buf := newTestPrinter()

	p.Data(map[string]int{"b": 2, "a": 1}, "")

	out := buf.String()
	assert.Contains(t, out, strings.Repeat("=", DefaultLabelRepetition)+" DATA ")
	assert.Less(t, strings.Index(out, `"a"`), strings.Index(out, `"b"`), "map keys should be sorted")
}

func TestResponseAndType(t *testing.T) {
	p, buf := newTestPrinter()

	p.Response(sample{Name: "x"}, "")
	p.Type(sample{}, "")

	out := buf.String()
	assert.Contains(t, out, " RESPONSE ")
	assert.Contains(t, out, " Type ")
	assert.Contains(t, out, "terminal.sample")
}

func TestDir(t *testing.T) {
	names := Dir(sample{})

	assert.Equal(t, []string{"Count", "Greeting", "Name"}, names)
	assert.Nil(t, Dir(nil))
}

func TestFields(t *testing.T) {
	fields, ok := Fields(&sample{Name: "x", Count: 2, hidden: true})

	require.True(t, ok)
	assert.Equal(t, map[string]any{"Name": "x", "Count": 2}, fields)

	_, ok = Fields(42)
	assert.False(t, ok)

	_, ok = Fields((*sample)(nil))
	assert.False(t, ok)
}

func TestDict_NonStruct(t *testing.T) {
	p, buf := newTestPrinter()

	p.Dict(42, "")

	out := buf.String()
	assert.Contains(t, out, "Unable to print fields")
	assert.Contains(t, out, "Object: 42 of type: int has no fields")
}

func TestBreakpoint(t *testing.T) {
	p, buf := newTestPrinter()

	p.Breakpoint("", "")

	assert.Contains(t, buf.String(), strings.Repeat("*", 30)+" BREAK POINT "+strings.Repeat("*", 30))
}

func TestLocals(t *testing.T) {
	p, buf := newTestPrinter()

	p.Locals(map[string]any{"userID": "u-1"})

	out := buf.String()
	assert.Contains(t, out, " Local Variables ")
	assert.Contains(t, out, "u-1")
}

func TestBoldWithoutTerminal(t *testing.T) {
	p, _ := newTestPrinter()

	assert.Equal(t, "text", p.Bold("text", "red"))
	assert.Equal(t, "404", p.Bold(404, "unknown"))
}

func TestColor(t *testing.T) {
	_, ok := Color("red")
	assert.True(t, ok)

	_, ok = Color("")
	assert.False(t, ok)

	assert.False(t, IsColor("purple"))
}
