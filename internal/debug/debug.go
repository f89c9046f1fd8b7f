package debug

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"codeberg.org/algorave/viewkit/internal/terminal"
	pkgerrors "github.com/pkg/errors"
)

const DefaultLabel = "Exception Occurred"

// packages whose frames are skipped when locating where an error was raised
var helperPackages = []string{
	"codeberg.org/algorave/viewkit/internal/errors.",
	"codeberg.org/algorave/viewkit/internal/view.(*Handler).",
}

// Frame locates where an error was created
type Frame struct {
	Function string
	File     string
	Line     int
}

// Debugger prints error details for developers
type Debugger struct {
	*terminal.Printer

	// print one field per line instead of a single underlined line
	Multiline bool

	// stripped from reported file locations
	BaseDir string
}

// creates a debugger writing to w
func New(w io.Writer, multiline bool, baseDir string) *Debugger {
	return &Debugger{
		Printer:   terminal.NewPrinter(w),
		Multiline: multiline,
		BaseDir:   baseDir,
	}
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// DebugException prints the error, its type and the location it came from.
// Errors carrying a pkg/errors stack report their origin, others report
// the caller of DebugException.
func (d *Debugger) DebugException(err error, label, bg string) {
	if label == "" {
		label = DefaultLabel
	}

	if bg == "" {
		bg = "red"
	}

	defer func() {
		if r := recover(); r != nil {
			d.DataWithBackground(err, "An exception occurred", "red")
		}
	}()

	frame, ok := ErrorFrame(err)
	if !ok {
		frame = callerFrame(1)
	}

	location := d.relative(frame.File)
	errType := fmt.Sprintf("%T", rootCause(err))

	if d.Multiline {
		d.printMultiline(label, err, errType, frame.Function, location, frame.Line, bg)
		return
	}

	d.printSingleLine(err, errType, location, frame.Function, frame.Line, bg)
}

func (d *Debugger) printMultiline(label string, err error, errType, code, location string, line int, bg string) {
	fprintln(d.Out)
	d.Label(label, terminal.DefaultSymbol, terminal.DefaultLabelRepetition, "white", bg)
	fprintln(d.Out, "Exception:", d.Bold(errString(err), bg))
	fprintln(d.Out, "Type:", d.Bold(errType, bg))
	fprintln(d.Out, "Function/Method/Caller:", d.Bold(code, bg))
	fprintln(d.Out, "Location:", d.Bold(location, bg))
	fprintln(d.Out, "Line:", d.Bold(line, bg))
	d.Symbols(terminal.DefaultSymbol, terminal.DefaultSymbolRepetition+len(label), bg)
}

func (d *Debugger) printSingleLine(err error, errType, location, code string, line int, bg string) {
	oneLine := fmt.Sprintf("%s %s %s Caller: %s() Line: %d", errString(err), errType, location, code, line)
	fprintln(d.Out, d.Underlined(oneLine, bg))
}

// Breakpoint stops execution of the current handler: the returned error is
// meant to be returned straight away.
func (d *Debugger) Breakpoint(message string) error {
	d.Printer.Breakpoint("", "")
	return pkgerrors.New(message)
}

// Breakpoint without printing, for code that has no debugger at hand
func Breakpoint(message string) error {
	return pkgerrors.New(message)
}

// returns the innermost frame recorded on err by pkg/errors
func ErrorFrame(err error) (Frame, bool) {
	var st stackTracer

	// the deepest stack tracer is the closest to where the error was created
	for e := err; e != nil; e = unwrap(e) {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
	}

	if st == nil {
		return Frame{}, false
	}

	trace := st.StackTrace()
	if len(trace) == 0 {
		return Frame{}, false
	}

	// skip constructor helpers so the frame points at the code that raised
	first, found := Frame{}, false
	for _, f := range trace {
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		file, line := fn.FileLine(pc)
		frame := Frame{Function: shortFuncName(fn.Name()), File: file, Line: line}

		if !found {
			first, found = frame, true
		}

		if !isHelper(fn.Name()) {
			return frame, true
		}
	}

	return first, found
}

func callerFrame(skip int) Frame {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{Function: "unknown", File: "unknown"}
	}

	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = shortFuncName(fn.Name())
	}

	return Frame{Function: name, File: file, Line: line}
}

func (d *Debugger) relative(file string) string {
	if d.BaseDir == "" {
		return file
	}

	if rel, err := filepath.Rel(d.BaseDir, file); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}

	return file
}

func isHelper(funcName string) bool {
	for _, prefix := range helperPackages {
		if strings.HasPrefix(funcName, prefix) {
			return true
		}
	}

	return false
}

func fprintln(w io.Writer, a ...any) {
	fmt.Fprintln(w, a...) //nolint:errcheck // terminal output is best-effort
}

func unwrap(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}

	return nil
}

// returns the innermost wrapped error, for type reporting
func rootCause(err error) error {
	for {
		next := unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}

	return err.Error()
}

// trims the package path, keeping pkg.Func or pkg.(*T).Method
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	return name
}
