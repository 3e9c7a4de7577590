package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MonkyMars/gecho"
)

// FileStore keeps one JSON blob per cart key under a directory. Writes go
// through a temp file and rename so a crashed write never leaves a
// half-written snapshot behind.
type FileStore struct {
	logger *gecho.Logger
	dir    string
}

func NewFileStore(logger *gecho.Logger, dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart store directory: %w", err)
	}

	logger.Debug("Cart file store ready", gecho.Field("dir", dir))

	return &FileStore{
		logger: logger,
		dir:    dir,
	}, nil
}

func (fs *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return data, nil
}

func (fs *FileStore) Save(ctx context.Context, key string, data []byte) error {
	safe := sanitizeKey(key)

	tmp, err := os.CreateTemp(fs.dir, safe+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(fs.dir, safe+".json"))
}

func (fs *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(fs.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (fs *FileStore) Ping(ctx context.Context) error {
	_, err := os.Stat(fs.dir)
	return err
}

func (fs *FileStore) Close() error {
	return nil
}

// path maps a cart key to its file.
func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, sanitizeKey(key)+".json")
}

// sanitizeKey strips separators so a hostile key cannot escape the store
// directory. Every filesystem access goes through it, including the temp
// file pattern, which rejects separators outright.
func sanitizeKey(key string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
}
