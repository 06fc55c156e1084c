package diagnostics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/archipelago/pkg/archipelago"
)

func init() {
	color.NoColor = true
}

func noop(archipelago.RequestContext) error { return nil }

func sampleDescriptors() []*archipelago.RouteDescriptor {
	return []*archipelago.RouteDescriptor{
		{RelativePath: "/admin/[...].yaml", Route: "/admin/*", Config: &archipelago.Config{Routes: []archipelago.RouteConfig{
			{Method: archipelago.VerbGet, Handlers: []archipelago.HandlerFunc{noop}},
			{Method: archipelago.VerbPost, Handlers: []archipelago.HandlerFunc{noop, noop}},
		}}},
		{RelativePath: "/admin/index.yaml", Route: "/admin"},
		{RelativePath: "/admin/orders/index.route", Route: "/admin/orders", Config: &archipelago.Config{Ignore: true}},
	}
}

func newTestSystem(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewDiagnosticSystem(level).WithOutput(&out, &errOut), &out, &errOut
}

func TestRouteTable(t *testing.T) {
	d, out, _ := newTestSystem(DiagnosticInfo)
	d.RouteTable(sampleDescriptors())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"METHOD", "ROUTE", "MODULE", "HANDLERS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"GET", "/admin/*", "/admin/[...].yaml", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"POST", "/admin/*", "/admin/[...].yaml", "2"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"-", "/admin", "/admin/index.yaml", "(no", "config)"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"-", "/admin/orders", "/admin/orders/index.route", "(ignored)"}, strings.Fields(lines[4]))

	// columns are aligned
	assert.Equal(t, strings.Index(lines[0], "ROUTE"), strings.Index(lines[1], "/admin/*"))
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleDescriptors())
	assert.Equal(t, Summary{Modules: 3, Routes: 2, Ignored: 1, Unconfigured: 1}, s)

	d, out, _ := newTestSystem(DiagnosticInfo)
	d.Summary(s)
	assert.Contains(t, out.String(), "3 modules, 2 routes bound, 1 ignored, 1 without config")
}

func TestError_UsesErrorCode(t *testing.T) {
	d, _, errOut := newTestSystem(DiagnosticError)

	d.Error(&archipelago.Error{Code: archipelago.MissingConfigErrorCode, Path: "/admin/index.yaml", Message: "module exports no config"})
	d.Error(errors.New("plain failure"))

	assert.Contains(t, errOut.String(), "[MissingConfigError] /admin/index.yaml: module exports no config")
	assert.Contains(t, errOut.String(), "[ERROR] plain failure")
}

func TestLevels(t *testing.T) {
	d, out, errOut := newTestSystem(DiagnosticSilent)
	d.Header("routes")
	d.Success("done")
	d.Warn("careful")
	d.Error(errors.New("boom"))
	d.RouteTable(sampleDescriptors())
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())

	d, out, _ = newTestSystem(DiagnosticWarn)
	d.Success("done")
	d.Warn("careful")
	assert.Equal(t, "[WARN] careful\n", out.String())
}
