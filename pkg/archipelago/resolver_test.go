package archipelago

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver_NormalizesKeys(t *testing.T) {
	config := &Config{Routes: []RouteConfig{{Method: VerbGet, Handlers: []HandlerFunc{noop}}}}
	resolver := NewStaticResolver(map[string]*Config{`users\[id].go`: config})

	got, err := resolver.Resolve(context.Background(), RouteDescriptor{RelativePath: "/users/[id].go"})
	require.NoError(t, err)
	assert.Same(t, config, got)
}

func TestStaticResolver_MissingEntryHasNoConfig(t *testing.T) {
	resolver := NewStaticResolver(nil)

	got, err := resolver.Resolve(context.Background(), RouteDescriptor{RelativePath: "/index.go"})
	require.NoError(t, err)
	assert.Nil(t, got)

	resolver.Set("index.go", &Config{Ignore: true})
	got, err = resolver.Resolve(context.Background(), RouteDescriptor{RelativePath: "/index.go"})
	require.NoError(t, err)
	assert.True(t, got.Ignore)
}

func TestRouteRecorder_RoutesByMethod(t *testing.T) {
	recorder := NewRouteRecorder()
	recorder.RegisterRoute(VerbGet, "/a", noop)
	recorder.RegisterRoute(VerbPost, "/a", noop, noop)
	recorder.RegisterRoute(VerbGet, "/b", noop)

	gets := recorder.RoutesByMethod(VerbGet)
	require.Len(t, gets, 2)
	assert.Equal(t, Pattern("/b"), gets[1].Path)
	assert.Len(t, recorder.RoutesByMethod(VerbPost)[0].Handlers, 2)
	assert.Empty(t, recorder.RoutesByMethod(VerbDelete))
}

func TestParseVerb(t *testing.T) {
	v, err := ParseVerb(" post ")
	require.NoError(t, err)
	assert.Equal(t, VerbPost, v)

	v, err = ParseVerb("all")
	require.NoError(t, err)
	assert.Equal(t, VerbAll, v)

	_, err = ParseVerb("TRACE")
	assert.Error(t, err)
}
