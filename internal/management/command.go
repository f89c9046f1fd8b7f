// Package management writes styled output for command line tools.
package management

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const defaultWidth = 80

// Method selects how WriteItems formats each item
type Method int

const (
	// Str formats items with %v
	Str Method = iota + 1
	// Repr formats items with %#v, quoting strings
	Repr
)

// String returns the method name
func (m Method) String() string {
	switch m {
	case Str:
		return "str"
	case Repr:
		return "repr"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "str" or "repr" to a Method
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "str":
		return Str, nil
	case "repr", "":
		return Repr, nil
	}

	return 0, fmt.Errorf("method must be repr or str, got %q", name)
}

// Command writes to Stdout; each Write ends with a newline
type Command struct {
	Stdout io.Writer
	Style  *Style
}

// creates a command writing to w, colors follow w's terminal capabilities
func NewCommand(w io.Writer) *Command {
	return &Command{
		Stdout: w,
		Style:  NewStyle(lipgloss.NewRenderer(w)),
	}
}

// Write writes text and appends a newline unless it already ends with one
func (c *Command) Write(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	_, _ = io.WriteString(c.Stdout, text)
}

// WriteMapping writes "key : value" lines sorted by key
func (c *Command) WriteMapping(m map[string]any, addNewline bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c.Write(c.Style.Render(StyleSQLColtype, fmt.Sprintf("%s : %v", k, m[k])))
	}

	if addNewline {
		c.Write("\n")
	}
}

// WriteItems writes one styled line per item. style is SQL_KEYWORD or, for
// any other value, SQL_COLTYPE.
func (c *Command) WriteItems(items []any, style string, method Method) error {
	if method != Str && method != Repr {
		return fmt.Errorf("method must be repr or str, got %s", method)
	}

	if style != StyleSQLKeyword {
		style = StyleSQLColtype
	}

	for _, item := range items {
		c.Write(c.Style.Render(style, format(item, method)))
	}

	return nil
}

// ShowStyles writes every style name rendered in its own style
func (c *Command) ShowStyles() {
	c.Write(c.Style.HTTPInfo("\n#### Available styles: #### \n"))

	for _, name := range styleNames {
		c.Write(c.Style.Render(name, fmt.Sprintf("Style.Render(%q)", name)))
	}

	c.Write(c.Style.HTTPInfo("\n>> Usage Example: cmd.Write(cmd.Style.HTTPInfo(\"Info message\"))"))
	c.Write(c.Style.HTTPInfo("\n#### End styles: #### \n"))
}

// Rule writes symbol repeated across the terminal width
func (c *Command) Rule(symbol string) {
	if symbol == "" {
		symbol = "="
	}

	c.Write(strings.Repeat(symbol, Width(c.Stdout)/len(symbol)))
}

// Width returns the terminal width of w, or 80 when w is not a terminal
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return defaultWidth
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}

func format(item any, method Method) string {
	if method == Str {
		return fmt.Sprint(item)
	}

	return fmt.Sprintf("%#v", item)
}
