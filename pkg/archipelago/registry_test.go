package archipelago

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddKeepsInsertionOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"/c", "/a", "/b"} {
		require.NoError(t, registry.Add(&RouteDescriptor{AbsolutePath: "/root" + name, RelativePath: name}))
	}

	assert.Equal(t, []string{"/c", "/a", "/b"}, relativePaths(registry.Descriptors()))
	assert.Equal(t, 3, registry.Len())
}

func TestRegistry_RejectsDuplicatePath(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Add(&RouteDescriptor{AbsolutePath: "/root/a.ts"}))

	err := registry.Add(&RouteDescriptor{AbsolutePath: "/root/a.ts"})
	assert.Error(t, err)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()
	descriptor := &RouteDescriptor{AbsolutePath: "/root/a.ts", Route: "/a"}
	require.NoError(t, registry.Add(descriptor))

	got, ok := registry.Get("/root/a.ts")
	require.True(t, ok)
	assert.Same(t, descriptor, got)

	_, ok = registry.Get("/root/missing.ts")
	assert.False(t, ok)
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = registry.Add(&RouteDescriptor{AbsolutePath: fmt.Sprintf("/root/%d.ts", i%10)})
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, registry.Len())
}
