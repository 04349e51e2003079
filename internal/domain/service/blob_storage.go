package service

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Read when no blob exists at a location.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage persists raw bytes under generated, content-opaque locations.
// Locations are never derived from user input; derived variants live at
// location + "_" + suffix.
type BlobStorage interface {
	// Write stores data under a freshly generated location and returns it.
	// The caller must not observe success before the bytes are durable.
	Write(ctx context.Context, data []byte) (string, error)
	// WriteVariant stores data at an exact derived location. Overwriting an
	// existing variant is allowed; thumbnail regeneration depends on it.
	WriteVariant(ctx context.Context, location, suffix string, data []byte) error
	Read(ctx context.Context, location string) ([]byte, error)
	// Delete is best-effort compensation for a failed upload.
	Delete(ctx context.Context, location string) error
	Close() error
}
