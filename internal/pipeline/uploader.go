package pipeline

import (
	"context"
	"log/slog"
	"time"
)

const (
	// KeyPrefix roots every uploaded object.
	KeyPrefix = "ncdhhs-pdfs"

	sourceTag = "ncdhhs-policies"
)

// UploadRecord is the outcome of persisting one document.
type UploadRecord struct {
	Key    string `json:"key"`
	Bucket string `json:"bucket"`
}

// Uploader writes validated documents through an ObjectStore. Keys are
// deterministic given (section, filename), so re-processing the same URL
// overwrites instead of duplicating.
type Uploader struct {
	store  ObjectStore
	bucket string
	now    func() time.Time
}

func NewUploader(store ObjectStore, bucket string) *Uploader {
	return &Uploader{store: store, bucket: bucket, now: time.Now}
}

// Upload writes content under KeyPrefix/<sanitized section>/<sanitized
// filename> with descriptive metadata. Store failures propagate unchanged.
func (u *Uploader) Upload(ctx context.Context, content []byte, filename, section string) (*UploadRecord, error) {
	key := KeyPrefix + "/" + SanitizeFolderName(section) + "/" + SanitizeFilename(filename)
	uploadedAt := u.now().Format(time.RFC3339)

	metadata := map[string]string{
		"upload-date":   uploadedAt,
		"original-name": filename,
		"source":        sourceTag,
		"section":       section,
		"last-updated":  uploadedAt,
	}

	if err := u.store.Put(ctx, key, content, "application/pdf", metadata); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "uploaded document", "key", key, "bucket", u.bucket, "size", len(content))
	return &UploadRecord{Key: key, Bucket: u.bucket}, nil
}
