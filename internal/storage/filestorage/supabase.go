package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"cabdin/internal/storage"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStorage stores blobs in Supabase Storage buckets using a service key.
type SupabaseStorage struct {
	client  *storage_go.Client
	maxSize int64
}

// NewSupabaseStorage expects the project URL, e.g. https://<ref>.supabase.co.
func NewSupabaseStorage(projectURL, serviceKey string, maxSize int64) *SupabaseStorage {
	endpoint := strings.TrimRight(projectURL, "/") + "/storage/v1"

	return &SupabaseStorage{
		client:  storage_go.NewClient(endpoint, serviceKey, map[string]string{"apikey": serviceKey}),
		maxSize: maxSize,
	}
}

func (s *SupabaseStorage) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	const op = "filestorage.SupabaseStorage.Upload"

	if err := checkName(bucket, name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upsert := false

	_, err := s.client.UploadFile(bucket, name, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Remove deletes objects in one request. Missing objects are not an error.
func (s *SupabaseStorage) Remove(ctx context.Context, bucket string, names ...string) error {
	const op = "filestorage.SupabaseStorage.Remove"

	paths := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			paths = append(paths, n)
		}
	}
	if len(paths) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.client.RemoveFile(bucket, paths); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SupabaseStorage) PublicURL(bucket, name string) string {
	return s.client.GetPublicUrl(bucket, name).SignedURL
}
