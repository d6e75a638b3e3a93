// Package storage persists uploaded crop images through a blob bucket.
// The bucket is backed by the local filesystem in the default deployment,
// but the gocloud API keeps the door open for object storage backends.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"farmlink/config"
	"farmlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// blobStore implements ArtifactStore on top of a gocloud blob bucket.
type blobStore struct {
	bucket       *blob.Bucket
	publicPrefix string
}

// NewBlobStore opens the file-backed bucket configured under uploads.dir and
// serves artifacts under uploads.publicPrefix.
func NewBlobStore(cfg *config.Config) (service.ArtifactStore, error) {
	dir := "./uploads"
	publicPrefix := "/uploads"
	if cfg.Uploads != nil {
		if cfg.Uploads.Dir != "" {
			dir = cfg.Uploads.Dir
		}
		if cfg.Uploads.PublicPrefix != "" {
			publicPrefix = cfg.Uploads.PublicPrefix
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploads bucket")
	}

	return &blobStore{
		bucket:       bucket,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}, nil
}

// Save writes the artifact under a collision-free key and returns its public path.
func (s *blobStore) Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	key := generateKey(filename)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close blob writer")
	}

	return s.publicPrefix + "/" + key, nil
}

// Delete removes a previously stored artifact by its public path.
func (s *blobStore) Delete(ctx context.Context, publicPath string) error {
	if !strings.HasPrefix(publicPath, s.publicPrefix+"/") {
		return errors.Errorf("path %q is not under the uploads prefix", publicPath)
	}
	key := strings.TrimPrefix(publicPath, s.publicPrefix+"/")

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

// generateKey derives a unique storage key that keeps the original extension
// so the static file server can infer content types.
func generateKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(path.Base(filename)))

	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)
}
