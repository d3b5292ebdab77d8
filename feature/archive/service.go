package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"result-checker/core/importer"
	"result-checker/core/reconcile"
	"result-checker/core/results"
	"result-checker/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SnapshotPrefix is where exports are written.
const SnapshotPrefix = "snapshots/"

// Snapshot is the exported object body.
type Snapshot struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Count      int              `json:"count"`
	Results    []results.Record `json:"results"`
}

// ExportResult describes a written snapshot.
type ExportResult struct {
	Bucket  string `json:"bucket"`
	Object  string `json:"object"`
	Records int    `json:"records"`
	Size    int64  `json:"size"`
}

// ObjectSummary is one listed archive object.
type ObjectSummary struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Service exports and imports archive objects.
type Service struct {
	client     storage.Client
	bucket     string
	region     string
	store      results.Store
	reconciler *reconcile.Reconciler
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// NewService creates a new archive service.
func NewService(client storage.Client, bucket, region string, store results.Store, reconciler *reconcile.Reconciler, logger *zap.Logger) *Service {
	return &Service{
		client:     client,
		bucket:     bucket,
		region:     region,
		store:      store,
		reconciler: reconciler,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Export writes every stored record to a new snapshot object.
func (s *Service) Export(ctx context.Context) (*ExportResult, error) {
	records, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if records == nil {
		records = []results.Record{}
	}

	now := s.now().UTC()
	body, err := json.Marshal(Snapshot{ExportedAt: now, Count: len(records), Results: records})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	object := snapshotName(now, s.newID())
	info, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot %s: %w", object, err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int("records", len(records)),
	)
	return &ExportResult{Bucket: s.bucket, Object: object, Records: len(records), Size: info.Size}, nil
}

// snapshotName keeps names time-ordered; the id suffix separates exports
// made within the same second.
func snapshotName(at time.Time, id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return SnapshotPrefix + "results-" + at.Format("20060102T150405Z") + "-" + id + ".json"
}

// Import applies a batch object through the reconciler. A non-empty mode
// overrides every item's own upload mode.
func (s *Service) Import(ctx context.Context, object string, mode results.UploadMode) (*reconcile.BatchResult, error) {
	format, err := importer.DetectFormat(object)
	if err != nil {
		return nil, results.NewValidationError(err.Error())
	}

	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(object, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, objectError(object, err)
	}

	items, err := importer.Parse(format, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if mode != "" {
		importer.ForceMode(items, mode)
	}

	res, err := s.reconciler.Apply(ctx, items)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Batch object imported",
		zap.String("object", object),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

// List returns the archive objects under prefix.
func (s *Service) List(ctx context.Context, prefix string) ([]ObjectSummary, error) {
	out := []ObjectSummary{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", s.bucket, obj.Err)
		}
		out = append(out, ObjectSummary{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	return out, nil
}

func objectError(object string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("object %s: %w", object, results.ErrNotFound)
	}
	return fmt.Errorf("failed to read %s: %w", object, err)
}
