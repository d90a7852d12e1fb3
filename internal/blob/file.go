package blob

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpggio/readycheck/internal/repository"
)

// File stores each key as one file under dir/namespace.
type File struct {
	dir string
}

// NewFile creates the namespace directory under root if needed.
func NewFile(root, namespace string) (*File, error) {
	if strings.TrimSpace(root) == "" || strings.TrimSpace(namespace) == "" {
		return nil, repository.ErrInvalidInput
	}
	dir := filepath.Join(root, url.PathEscape(namespace))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

// Get reads the file for key.
func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("reading blob %q: %w", key, err)
	}
	return data, nil
}

// Set replaces the file for key through a temp file and rename so a crash
// never leaves a half-written value.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	target := f.path(key)
	tmp := target + ".tmp"

	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp blob: %w", err)
	}
	if _, err := file.Write(value); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing temp blob: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing temp blob: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp blob: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replacing blob %q: %w", key, err)
	}
	return nil
}

var _ repository.BlobRepository = (*File)(nil)
