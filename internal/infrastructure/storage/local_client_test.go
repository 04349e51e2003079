package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filedock/internal/domain/service"
)

func TestWriteAndRead(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	payload := []byte("hello blob")
	location, err := client.Write(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, location)

	got, err := client.Read(ctx, location)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWriteGeneratesFreshLocations(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	first, err := client.Write(ctx, []byte("a"))
	require.NoError(t, err)
	second, err := client.Write(ctx, []byte("a"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestWriteVariant(t *testing.T) {
	root := t.TempDir()
	client, err := NewLocalClient(root)
	require.NoError(t, err)
	ctx := context.Background()

	location, err := client.Write(ctx, []byte("original"))
	require.NoError(t, err)

	require.NoError(t, client.WriteVariant(ctx, location, "100", []byte("thumb")))

	got, err := client.Read(ctx, location+"_100")
	require.NoError(t, err)
	assert.Equal(t, []byte("thumb"), got)

	// Variants are flat siblings of the original.
	_, err = os.Stat(filepath.Join(root, location+"_100"))
	assert.NoError(t, err)

	// Overwriting a variant is allowed.
	require.NoError(t, client.WriteVariant(ctx, location, "100", []byte("thumb2")))
	got, err = client.Read(ctx, location+"_100")
	require.NoError(t, err)
	assert.Equal(t, []byte("thumb2"), got)
}

func TestReadMissing(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)

	_, err = client.Read(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}

func TestDelete(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	location, err := client.Write(ctx, []byte("bytes"))
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, location))

	_, err = client.Read(ctx, location)
	assert.ErrorIs(t, err, service.ErrBlobNotFound)

	// Deleting an already-deleted blob is not an error.
	assert.NoError(t, client.Delete(ctx, location))
}

func TestReadStripsPathSeparators(t *testing.T) {
	root := t.TempDir()
	client, err := NewLocalClient(root)
	require.NoError(t, err)

	_, err = client.Read(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}
