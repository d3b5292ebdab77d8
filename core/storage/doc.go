// Package storage wraps the MinIO client used by the results archive.
//
// The Client interface covers what the archive needs: checking and creating
// the bucket, putting and getting objects, and listing them. It works against
// AWS S3 and self-hosted MinIO alike and is mocked in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
