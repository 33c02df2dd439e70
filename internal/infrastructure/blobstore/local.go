// Package blobstore keeps downloaded filing bytes under relative slash-separated keys.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const BackendLocal = "local"

type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %q: %w", root, err)
	}

	return &Local{root: root}, nil
}

func (l *Local) Backend() string {
	return BackendLocal
}

func (l *Local) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}

	return filepath.Join(l.root, clean), nil
}

// Put writes to a temporary sibling first and renames it into place, so readers never
// observe a partially written blob.
func (l *Local) Put(ctx context.Context, key string, data []byte, _ string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(fmt.Errorf("failed to write blob: %w", err), tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close blob: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move blob into place: %w", err)
	}

	return nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}

func (l *Local) Walk(ctx context.Context, fn func(key string, size int64) error) error {
	return filepath.WalkDir(l.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".upload-") {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %q: %w", path, err)
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}

		return fn(filepath.ToSlash(rel), info.Size())
	})
}
