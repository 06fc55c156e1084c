package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_YAML(t *testing.T) {
	spec, err := decodeDocument([]byte(`
config:
  routes:
    - method: get
      handlers: [auth, render]
    - method: POST
      handlers:
        - auth
  meta:
    owner: billing
    weight: 3
`))

	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.False(t, spec.Ignore)
	require.Len(t, spec.Routes, 2)
	assert.Equal(t, RouteSpec{Method: "get", Handlers: []string{"auth", "render"}}, spec.Routes[0])
	assert.Equal(t, "billing", spec.Meta["owner"])
	assert.Equal(t, 3, spec.Meta["weight"])
}

func TestDecodeDocument_JSON(t *testing.T) {
	spec, err := decodeDocument([]byte(`{"config": {"ignore": true, "routes": [{"method": "DELETE", "handlers": ["auth"]}]}}`))

	require.NoError(t, err)
	assert.True(t, spec.Ignore)
	assert.Equal(t, "DELETE", spec.Routes[0].Method)
}

func TestDecodeDocument_NoConfig(t *testing.T) {
	for name, input := range map[string]string{
		"empty":       "",
		"whitespace":  "\n\n",
		"missing key": "{}",
		"null config": "config:\n",
	} {
		t.Run(name, func(t *testing.T) {
			spec, err := decodeDocument([]byte(input))
			require.NoError(t, err)
			assert.Nil(t, spec)
		})
	}
}

func TestDecodeDocument_RejectsUnknownFields(t *testing.T) {
	_, err := decodeDocument([]byte("config:\n  ignored: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignored")

	_, err = decodeDocument([]byte("routes: []\n"))
	assert.Error(t, err, "config must be nested under the config key")
}

func TestDecodeDocument_Malformed(t *testing.T) {
	_, err := decodeDocument([]byte("config: [unterminated"))
	assert.Error(t, err)
}
