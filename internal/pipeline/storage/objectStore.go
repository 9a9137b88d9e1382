package storage

import "context"

// ObjectStore is the remote bucket surface the pipeline needs. Keys are
// plain object names; buckets are passed per call because originals and
// extracted text live in different buckets.
type ObjectStore interface {
	Exists(ctx context.Context, bucket string, key string) (bool, error)
	UploadFile(ctx context.Context, bucket string, key string, path string) error
	PutText(ctx context.Context, bucket string, key string, text string) error
}
