package archipelago

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.DiscardHandler)

// writeTree creates files (relative slash paths) below root
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("module "+rel), 0644))
	}
}

// adminTree mirrors a small admin area:
//
//	admin/[...].ts
//	admin/index.ts
//	admin/orders/index.ts
//	admin/orders/[id]/index.ts
func adminTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root,
		"admin/[...].ts",
		"admin/index.ts",
		"admin/orders/index.ts",
		"admin/orders/[id]/index.ts",
	)
	return root
}

func noop(RequestContext) error { return nil }

func relativePaths(descriptors []*RouteDescriptor) []string {
	paths := make([]string, len(descriptors))
	for i, d := range descriptors {
		paths[i] = d.RelativePath
	}
	return paths
}

type hookRecorder struct {
	calls []RouteDescriptor
}

func (h *hookRecorder) hook(_ context.Context, descriptor RouteDescriptor) error {
	h.calls = append(h.calls, descriptor)
	return nil
}
