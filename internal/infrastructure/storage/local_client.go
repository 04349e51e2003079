package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"filedock/internal/domain/service"
)

// LocalClient stores blobs as flat files under a root directory. Location
// names are generated UUIDs, never user-supplied names, so the namespace is
// collision- and traversal-free without locking.
type LocalClient struct {
	root string
}

func NewLocalClient(root string) (*LocalClient, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalClient{root: root}, nil
}

var _ service.BlobStorage = (*LocalClient)(nil)

func (c *LocalClient) Write(ctx context.Context, data []byte) (string, error) {
	location := uuid.New().String()
	if err := c.writeFile(location, data); err != nil {
		return "", err
	}
	return location, nil
}

func (c *LocalClient) WriteVariant(ctx context.Context, location, suffix string, data []byte) error {
	return c.writeFile(location+"_"+suffix, data)
}

func (c *LocalClient) Read(ctx context.Context, location string) ([]byte, error) {
	data, err := os.ReadFile(c.path(location))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, service.ErrBlobNotFound
		}
		return nil, err
	}
	return data, nil
}

func (c *LocalClient) Delete(ctx context.Context, location string) error {
	err := os.Remove(c.path(location))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *LocalClient) Close() error {
	return nil
}

func (c *LocalClient) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(name), data, 0o600)
}

func (c *LocalClient) path(name string) string {
	// Base strips any separator a corrupted location could smuggle in.
	return filepath.Join(c.root, filepath.Base(name))
}
