package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRouteFile(t *testing.T) {
	spec, err := parseRouteFile("orders.route", []byte(`# order detail
GET auth load-order render

delete auth remove_order   # trailing comment
`))

	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.False(t, spec.Ignore)
	assert.Equal(t, []RouteSpec{
		{Method: "GET", Handlers: []string{"auth", "load-order", "render"}},
		{Method: "delete", Handlers: []string{"auth", "remove_order"}},
	}, spec.Routes)
}

func TestParseRouteFile_Ignore(t *testing.T) {
	spec, err := parseRouteFile("index.route", []byte("ignore\nGET listing"))

	require.NoError(t, err)
	assert.True(t, spec.Ignore)
	assert.Len(t, spec.Routes, 1, "ignored modules keep their routes")
}

func TestParseRouteFile_NoEntries(t *testing.T) {
	for name, input := range map[string]string{
		"empty":         "",
		"comments only": "# nothing here\n\n# yet\n",
		"crlf blank":    "\r\n\r\n",
	} {
		t.Run(name, func(t *testing.T) {
			spec, err := parseRouteFile("empty.route", []byte(input))
			require.NoError(t, err)
			assert.Nil(t, spec)
		})
	}
}

func TestParseRouteFile_Errors(t *testing.T) {
	tests := map[string]string{
		"verb without handlers": "GET\n",
		"stray symbol":          "GET auth $\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseRouteFile("bad.route", []byte(input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad.route")
		})
	}
}
