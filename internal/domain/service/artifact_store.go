package service

import (
	"context"
	"io"
)

// ArtifactStore defines the interface for storing uploaded binary artifacts,
// currently crop listing images. Implementations return the public path under
// which the artifact can be served.
type ArtifactStore interface {
	// Save writes the artifact under a generated key derived from the original
	// filename and returns its public path.
	Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)

	// Delete removes a previously stored artifact by its public path.
	// Used to compensate when a write that referenced the artifact fails.
	Delete(ctx context.Context, path string) error
}
