// Package diagnostics renders user-facing CLI output: status lines and the
// discovered route table
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/toyz/archipelago/pkg/archipelago"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
)

// DiagnosticSystem provides structured, user-friendly output
type DiagnosticSystem struct {
	level    DiagnosticLevel
	output   io.Writer
	errorOut io.Writer
}

// NewDiagnosticSystem creates a diagnostic system writing to stdout and stderr
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:    level,
		output:   os.Stdout,
		errorOut: os.Stderr,
	}
}

// WithOutput redirects regular and error output
func (d *DiagnosticSystem) WithOutput(output, errorOut io.Writer) *DiagnosticSystem {
	d.output = output
	d.errorOut = errorOut
	return d
}

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)

	methodColors = map[archipelago.Verb]*color.Color{
		archipelago.VerbGet:     color.New(color.FgBlue),
		archipelago.VerbPost:    color.New(color.FgGreen),
		archipelago.VerbPut:     color.New(color.FgYellow),
		archipelago.VerbPatch:   color.New(color.FgYellow),
		archipelago.VerbDelete:  color.New(color.FgRed),
		archipelago.VerbOptions: color.New(color.FgMagenta),
		archipelago.VerbHead:    color.New(color.FgMagenta),
		archipelago.VerbAll:     color.New(color.FgCyan),
	}
)

// Header outputs the tool header
func (d *DiagnosticSystem) Header(message string) {
	if d.level >= DiagnosticInfo {
		headerColor.Fprintf(d.output, "Archipelago: %s\n", message)
	}
}

// Success outputs a success line with a checkmark
func (d *DiagnosticSystem) Success(format string, args ...any) {
	if d.level >= DiagnosticInfo {
		successColor.Fprint(d.output, "✓ ")
		fmt.Fprintf(d.output, format+"\n", args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...any) {
	if d.level >= DiagnosticWarn {
		warnColor.Fprint(d.output, "[WARN] ")
		fmt.Fprintf(d.output, format+"\n", args...)
	}
}

// Error outputs error messages, including the error code when there is one
func (d *DiagnosticSystem) Error(err error) {
	if d.level < DiagnosticError {
		return
	}
	label := "ERROR"
	if code := archipelago.CodeOf(err); code != archipelago.UnknownErrorCode {
		label = code.String()
	}
	errorColor.Fprintf(d.errorOut, "[%s] ", label)
	fmt.Fprintln(d.errorOut, err)
}

// row is one line of the route table
type row struct {
	method string
	verb   archipelago.Verb
	route  string
	module string
	note   string
}

// RouteTable prints one row per bound verb, and one row for every module
// that binds nothing, in discovery order
func (d *DiagnosticSystem) RouteTable(descriptors []*archipelago.RouteDescriptor) {
	if d.level < DiagnosticInfo {
		return
	}

	rows := tableRows(descriptors)
	widths := [3]int{len("METHOD"), len("ROUTE"), len("MODULE")}
	for _, r := range rows {
		widths[0] = max(widths[0], len(r.method))
		widths[1] = max(widths[1], len(r.route))
		widths[2] = max(widths[2], len(r.module))
	}

	headerColor.Fprintf(d.output, "%-*s  %-*s  %-*s  %s\n",
		widths[0], "METHOD", widths[1], "ROUTE", widths[2], "MODULE", "HANDLERS")

	for _, r := range rows {
		method, note := pad(r.method, widths[0]), r.note
		if c, ok := methodColors[r.verb]; ok {
			method = c.Sprint(method)
		} else {
			method, note = dimColor.Sprint(method), dimColor.Sprint(note)
		}
		fmt.Fprintf(d.output, "%s  %s  %s  %s\n", method, pad(r.route, widths[1]), pad(r.module, widths[2]), note)
	}
}

func tableRows(descriptors []*archipelago.RouteDescriptor) []row {
	var rows []row
	for _, descriptor := range descriptors {
		switch {
		case descriptor.Config == nil:
			rows = append(rows, row{method: "-", route: descriptor.Route, module: descriptor.RelativePath, note: "(no config)"})
		case descriptor.Ignored():
			rows = append(rows, row{method: "-", route: descriptor.Route, module: descriptor.RelativePath, note: "(ignored)"})
		case !descriptor.HasRoutes():
			rows = append(rows, row{method: "-", route: descriptor.Route, module: descriptor.RelativePath, note: "(no routes)"})
		default:
			for _, route := range descriptor.Config.Routes {
				rows = append(rows, row{
					method: route.Method.String(),
					verb:   route.Method,
					route:  descriptor.Route,
					module: descriptor.RelativePath,
					note:   strconv.Itoa(len(route.Handlers)),
				})
			}
		}
	}
	return rows
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// Summary counts the outcome of a discovery run
type Summary struct {
	Modules      int
	Routes       int
	Ignored      int
	Unconfigured int
}

// Summarize computes a Summary over descriptors
func Summarize(descriptors []*archipelago.RouteDescriptor) Summary {
	s := Summary{Modules: len(descriptors)}
	for _, descriptor := range descriptors {
		switch {
		case descriptor.Config == nil:
			s.Unconfigured++
		case descriptor.Ignored():
			s.Ignored++
		default:
			s.Routes += len(descriptor.Config.Routes)
		}
	}
	return s
}

// Summary outputs the final statistics line
func (d *DiagnosticSystem) Summary(s Summary) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintln(d.output)
		successColor.Fprint(d.output, "✓ ")
		fmt.Fprintf(d.output, "%d modules, %d routes bound, %d ignored, %d without config\n",
			s.Modules, s.Routes, s.Ignored, s.Unconfigured)
	}
}
