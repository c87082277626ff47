package storage

import (
	"context"
	"io"
)

// StorageService defines avatar storage operations.
type StorageService interface {
	// UploadAvatar stores an image and returns its public URL.
	UploadAvatar(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
	// DeleteFile removes a stored file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
