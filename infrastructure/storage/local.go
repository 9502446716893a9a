// Package storage provides the artifact store over the local filesystem.
package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "gogarvis-backend/pkg/errors"
)

// LocalArtifactStore reads document artifacts from a directory on disk
type LocalArtifactStore struct {
	basePath string
}

// NewLocalArtifactStore creates an artifact store rooted at basePath
func NewLocalArtifactStore(basePath string) *LocalArtifactStore {
	return &LocalArtifactStore{basePath: basePath}
}

// Read returns the raw bytes of the named artifact. A missing file maps to a
// not found error; the filename is confined to the base directory.
func (s *LocalArtifactStore) Read(ctx context.Context, filename string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Reject path traversal before touching the filesystem.
	clean := filepath.Clean(filename)
	if clean != filename || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return nil, apperrors.NewNotFoundError("document artifact")
	}

	data, err := os.ReadFile(filepath.Join(s.basePath, clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("document artifact")
		}
		return nil, err
	}
	return data, nil
}
