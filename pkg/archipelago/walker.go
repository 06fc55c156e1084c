package archipelago

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DefaultWalkConcurrency bounds concurrent directory reads when no limit is given
const DefaultWalkConcurrency = 16

// walker enumerates a scan root. Sibling subdirectories are listed
// concurrently; each directory reserves one result slot per entry at
// listing time so the flattened order is deterministic
type walker struct {
	root   string
	logger *slog.Logger

	// reads holds one token per directory being listed
	reads chan struct{}
}

// Walk discovers every file below rootDir and adds one descriptor per file
// to the registry. A directory contributes its files in listing order,
// followed by the contents of each subdirectory in listing order
func Walk(ctx context.Context, rootDir string, registry *Registry, logger *slog.Logger) error {
	return walk(ctx, rootDir, registry, logger, 0)
}

func walk(ctx context.Context, rootDir string, registry *Registry, logger *slog.Logger, limit int) error {
	if logger == nil {
		logger = slog.Default()
	}
	if limit <= 0 {
		limit = DefaultWalkConcurrency
	}

	root, err := filepath.Abs(rootDir)
	if err != nil {
		return newError(TraversalErrorCode, rootDir, "failed to resolve root directory", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return newError(TraversalErrorCode, rootDir, "failed to stat root directory", err)
	}
	if !info.IsDir() {
		return newError(TraversalErrorCode, rootDir, "root is not a directory", nil)
	}

	w := &walker{root: root, logger: logger, reads: make(chan struct{}, limit)}
	descriptors, err := w.walkDir(ctx, root, []os.FileInfo{info})
	if err != nil {
		return err
	}

	for _, descriptor := range descriptors {
		if err := registry.Add(descriptor); err != nil {
			return newError(TraversalErrorCode, descriptor.RelativePath, "duplicate module", err)
		}
	}
	return nil
}

// readDir lists dir while holding a read token
func (w *walker) readDir(ctx context.Context, dir string) ([]fs.DirEntry, error) {
	select {
	case w.reads <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-w.reads }()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(TraversalErrorCode, dir, "failed to read directory", err)
	}
	return entries, nil
}

// walkDir lists dir; ancestors holds the resolved directories from the root
// down to and including dir
func (w *walker) walkDir(ctx context.Context, dir string, ancestors []os.FileInfo) ([]*RouteDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := w.readDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	// slots[i] holds the subtree of entries[i] when it is a directory
	slots := make([][]*RouteDescriptor, len(entries))
	var files []*RouteDescriptor

	g, gctx := errgroup.WithContext(ctx)
	var listErr error
	for i, entry := range entries {
		childPath := filepath.Join(dir, entry.Name())

		info, err := w.stat(childPath, entry)
		if err != nil {
			listErr = err
			break
		}

		if info.IsDir() {
			if cyclic(ancestors, info) {
				listErr = newError(TraversalErrorCode, childPath, "symlink cycle", nil)
				break
			}
			descent := append(ancestors[:len(ancestors):len(ancestors)], info)
			g.Go(func() error {
				subtree, err := w.walkDir(gctx, childPath, descent)
				slots[i] = subtree
				return err
			})
			continue
		}

		descriptor, err := w.describe(childPath)
		if err != nil {
			listErr = err
			break
		}
		files = append(files, descriptor)
	}

	// subdirectory walks always settle before returning
	if err := g.Wait(); err != nil && listErr == nil {
		listErr = err
	}
	if listErr != nil {
		return nil, listErr
	}

	for _, subtree := range slots {
		files = append(files, subtree...)
	}
	return files, nil
}

func cyclic(ancestors []os.FileInfo, info os.FileInfo) bool {
	for _, ancestor := range ancestors {
		if os.SameFile(ancestor, info) {
			return true
		}
	}
	return false
}

// stat follows symlinks so linked directories are walked like real ones
func (w *walker) stat(path string, entry fs.DirEntry) (os.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		info, err := entry.Info()
		if err != nil {
			return nil, newError(TraversalErrorCode, path, "failed to stat entry", err)
		}
		return info, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, newError(TraversalErrorCode, path, "failed to stat symlink target", err)
	}
	return info, nil
}

func (w *walker) describe(absolutePath string) (*RouteDescriptor, error) {
	rel, err := filepath.Rel(w.root, absolutePath)
	if err != nil {
		return nil, newError(TraversalErrorCode, absolutePath, "failed to compute relative path", err)
	}
	relativePath := "/" + filepath.ToSlash(rel)

	w.logger.Info("found file", "path", relativePath)

	return &RouteDescriptor{
		AbsolutePath: absolutePath,
		RelativePath: relativePath,
		Route:        Compile(relativePath),
	}, nil
}
