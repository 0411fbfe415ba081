package filestorage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"cabdin/internal/storage"
)

// BlobStore keeps binary objects addressed by bucket and name.
// Remove must treat missing objects as already removed.
type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error
	Remove(ctx context.Context, bucket string, names ...string) error
	PublicURL(bucket, name string) string
}

var ErrInvalidName = errors.New("invalid object name")

// LocalFileStorage stores objects under baseDir/<bucket>/<name>.
type LocalFileStorage struct {
	baseDir string // e.g. "./uploads"
	baseURL string // e.g. "http://localhost:8080/storage"
	maxSize int64
}

func NewLocalFileStorage(baseDir, baseURL string, maxSize int64) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

func (s *LocalFileStorage) Upload(ctx context.Context, bucket, name string, data []byte, _ string) error {
	const op = "filestorage.LocalFileStorage.Upload"

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := checkName(bucket, name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	dir := filepath.Join(s.baseDir, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%s: failed to create directories: %w", op, err)
	}

	filePath := filepath.Join(dir, name)

	// write to a temp file first so readers never see a partial object
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("%s: failed to create destination file: %w", op, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%s: failed to write file: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), filePath); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Remove deletes objects, skipping the ones that do not exist.
func (s *LocalFileStorage) Remove(ctx context.Context, bucket string, names ...string) error {
	const op = "filestorage.LocalFileStorage.Remove"

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		if name == "" {
			continue
		}

		if err := checkName(bucket, name); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		err := os.Remove(filepath.Join(s.baseDir, bucket, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *LocalFileStorage) PublicURL(bucket, name string) string {
	return s.baseURL + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(name)
}

// GetFullPath returns the path of an object on disk.
func (s *LocalFileStorage) GetFullPath(bucket, name string) string {
	return filepath.Join(s.baseDir, bucket, name)
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}

func checkName(bucket, name string) error {
	if bucket == "" || filepath.Base(bucket) != bucket || bucket == ".." {
		return ErrInvalidName
	}
	if name == "" || filepath.Base(name) != name || name == ".." || name == "." {
		return ErrInvalidName
	}
	return nil
}
