package filestorage

import (
	"context"

	"cabdin/internal/metrics"
)

// Instrumented counts uploads and removals of the wrapped store.
type Instrumented struct {
	next BlobStore
}

func NewInstrumented(next BlobStore) *Instrumented {
	return &Instrumented{next: next}
}

func (s *Instrumented) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	err := s.next.Upload(ctx, bucket, name, data, contentType)
	metrics.BlobOperationsTotal.WithLabelValues("upload", bucket, result(err)).Inc()
	return err
}

func (s *Instrumented) Remove(ctx context.Context, bucket string, names ...string) error {
	err := s.next.Remove(ctx, bucket, names...)
	metrics.BlobOperationsTotal.WithLabelValues("remove", bucket, result(err)).Inc()
	return err
}

func (s *Instrumented) PublicURL(bucket, name string) string {
	return s.next.PublicURL(bucket, name)
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
