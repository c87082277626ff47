package staging

import (
	"context"
	"errors"
)

// ErrNotFound is returned when nothing is staged under a key.
var ErrNotFound = errors.New("staged data not found")

// Store is a device-scoped key-value store for signup data recorded before
// authentication. Values are read once by a later session and removed only
// after they are processed successfully.
type Store interface {
	Get(ctx context.Context, deviceID, key string) (string, error)
	Set(ctx context.Context, deviceID, key, value string) error
	Delete(ctx context.Context, deviceID, key string) error
}
