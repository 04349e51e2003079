package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"filedock/internal/domain/service"
)

// CloudStorageClient implements BlobStorage on a GCS bucket. Object names
// are the generated locations, so derived variants ("<location>_<size>")
// work exactly as with the local client.
type CloudStorageClient struct {
	client     *gcs.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

var _ service.BlobStorage = (*CloudStorageClient)(nil)

func (c *CloudStorageClient) Write(ctx context.Context, data []byte) (string, error) {
	location := uuid.New().String()
	if err := c.writeObject(ctx, location, data); err != nil {
		return "", err
	}
	return location, nil
}

func (c *CloudStorageClient) WriteVariant(ctx context.Context, location, suffix string, data []byte) error {
	return c.writeObject(ctx, location+"_"+suffix, data)
}

func (c *CloudStorageClient) Read(ctx context.Context, location string) ([]byte, error) {
	rc, err := c.client.Bucket(c.bucketName).Object(location).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, service.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to open object reader: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %v", err)
	}
	return data, nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, location string) error {
	err := c.client.Bucket(c.bucketName).Object(location).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete object: %v", err)
	}
	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func (c *CloudStorageClient) writeObject(ctx context.Context, name string, data []byte) error {
	wc := c.client.Bucket(c.bucketName).Object(name).NewWriter(ctx)

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write object: %v", err)
	}

	// Close commits the object; success means the bytes are durable.
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %v", err)
	}
	return nil
}
