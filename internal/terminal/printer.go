// Package terminal prints colorized developer output: labels, symbol rules
// and pretty printed values. Colors degrade to plain text when the writer is
// not a terminal.
package terminal

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

const (
	DefaultSymbol           = "="
	DefaultLabelRepetition  = 20
	DefaultSymbolRepetition = 42
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Printer writes colorized output to Out
type Printer struct {
	Out      io.Writer
	renderer *lipgloss.Renderer
}

// creates a printer writing to w, stdout when w is nil
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}

	return &Printer{
		Out:      w,
		renderer: lipgloss.NewRenderer(w),
	}
}

// returns the renderer used for styles, so callers can share it
func (p *Printer) Renderer() *lipgloss.Renderer {
	return p.renderer
}

func (p *Printer) println(a ...any) {
	fmt.Fprintln(p.Out, a...) //nolint:errcheck // terminal output is best-effort
}

// returns text rendered bold in the fg color
func (p *Printer) Bold(text any, fg string) string {
	return p.style(fg, "", true, false).Render(fmt.Sprint(text))
}

// returns text rendered bold and underlined in the fg color
func (p *Printer) Underlined(text any, fg string) string {
	return p.style(fg, "", true, true).Render(fmt.Sprint(text))
}

// prints symbol repeated n times on a colored background
func (p *Printer) Symbols(symbol string, n int, bg string) {
	if symbol == "" {
		symbol = DefaultSymbol
	}

	if n < 0 {
		n = 0
	}

	p.println(p.style("white", bg, true, false).Render(strings.Repeat(symbol, n)))
}

// prints label surrounded by n repeated symbols on each side
func (p *Printer) Label(label, symbol string, n int, fg, bg string) {
	if symbol == "" {
		symbol = DefaultSymbol
	}

	if n < 0 {
		n = 0
	}

	line := fmt.Sprintf("%s %s %s", strings.Repeat(symbol, n), label, strings.Repeat(symbol, n))
	p.println(p.style(fg, bg, true, false).Render(line))
}

// prints a green label using the default symbol
func (p *Printer) DefaultLabel(label string) {
	p.Label(label, DefaultSymbol, DefaultLabelRepetition, "white", "green")
}

// pretty prints data under label
func (p *Printer) Data(data any, label string) {
	p.DataWithBackground(data, label, "green")
}

// pretty prints data under a label on bg
func (p *Printer) DataWithBackground(data any, label, bg string) {
	if label == "" {
		label = "DATA"
	}

	p.println()
	p.Label(label, DefaultSymbol, DefaultLabelRepetition, "white", bg)
	p.println(strings.TrimRight(Sdump(data), "\n"))
	p.println()
}

// pretty prints a response value
func (p *Printer) Response(response any, label string) {
	if label == "" {
		label = "RESPONSE"
	}

	p.Data(response, label)
}

// pretty prints the dynamic type of data
func (p *Printer) Type(data any, label string) {
	if label == "" {
		label = "Type"
	}

	p.Data(fmt.Sprintf("%T", data), label)
}

// pretty prints exported fields and methods of data
func (p *Printer) Dir(data any, label string) {
	if label == "" {
		label = "dir(data)"
	}

	p.Data(Dir(data), label)
}

// pretty prints the fields of a struct as a mapping
func (p *Printer) Dict(data any, label string) {
	if label == "" {
		label = "data fields"
	}

	fields, ok := Fields(data)
	if !ok {
		p.DefaultLabel("Unable to print fields")
		p.println(fmt.Sprintf("Object: %v of type: %T has no fields", data, data))
		return
	}

	p.Data(fields, label)
}

// prints a red break point line
func (p *Printer) Breakpoint(label, symbol string) {
	if label == "" {
		label = "BREAK POINT"
	}

	if symbol == "" {
		symbol = "*"
	}

	p.println()
	p.Label(label, symbol, 30, "white", "red")
	p.println()
}

// pretty prints a set of local variables
func (p *Printer) Locals(vars map[string]any) {
	p.Data(vars, "Local Variables")
}

// pretty prints values without pointer addresses, map keys sorted
func Sdump(data any) string {
	return dumper.Sdump(data)
}

// lists the exported field and method names of v, sorted
func Dir(v any) []string {
	if v == nil {
		return nil
	}

	var names []string
	t := reflect.TypeOf(v)

	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}

	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}

	if st.Kind() == reflect.Struct {
		for i := 0; i < st.NumField(); i++ {
			if f := st.Field(i); f.IsExported() {
				names = append(names, f.Name)
			}
		}
	}

	sort.Strings(names)
	return names
}

// returns the exported fields of a struct (or pointer to struct) by name
func Fields(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	fields := make(map[string]any, rv.NumField())
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fields[f.Name] = rv.Field(i).Interface()
	}

	return fields, true
}
