package queue

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filedock/internal/adapter/repository"
	"filedock/internal/domain/entity"
	domainrepo "filedock/internal/domain/repository"
	"filedock/internal/domain/service"
	"filedock/internal/infrastructure/storage"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 5, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func workerFixture(t *testing.T) (*Worker, domainrepo.FileRepository, service.BlobStorage) {
	t.Helper()
	fileRepo := repository.NewMemoryFileRepository()
	client, err := storage.NewLocalClient(t.TempDir())
	require.NoError(t, err)
	worker := NewWorker(NewThumbnailQueue(4), fileRepo, client)
	return worker, fileRepo, client
}

func TestProcessGeneratesAllWidths(t *testing.T) {
	worker, fileRepo, client := workerFixture(t)
	ctx := context.Background()

	original := testPNG(t, 600, 400)
	location, err := client.Write(ctx, original)
	require.NoError(t, err)

	file := &entity.File{
		UserID:    "u1",
		Name:      "photo.png",
		Type:      entity.FileTypeImage,
		ParentID:  entity.RootParentID,
		LocalPath: location,
	}
	require.NoError(t, fileRepo.Create(ctx, file))

	require.NoError(t, worker.Process(ctx, entity.ThumbnailJob{UserID: "u1", FileID: file.ID}))

	for _, want := range []struct {
		suffix string
		width  int
	}{
		{"500", 500},
		{"250", 250},
		{"100", 100},
	} {
		data, err := client.Read(ctx, location+"_"+want.suffix)
		require.NoError(t, err, "variant %s missing", want.suffix)

		thumb, err := imaging.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, want.width, thumb.Bounds().Dx())
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	worker, fileRepo, client := workerFixture(t)
	ctx := context.Background()

	location, err := client.Write(ctx, testPNG(t, 300, 200))
	require.NoError(t, err)

	file := &entity.File{
		UserID:    "u1",
		Name:      "photo.png",
		Type:      entity.FileTypeImage,
		ParentID:  entity.RootParentID,
		LocalPath: location,
	}
	require.NoError(t, fileRepo.Create(ctx, file))

	job := entity.ThumbnailJob{UserID: "u1", FileID: file.ID}
	require.NoError(t, worker.Process(ctx, job))
	// Redelivery regenerates and overwrites the same variants.
	require.NoError(t, worker.Process(ctx, job))

	_, err = client.Read(ctx, location+"_100")
	assert.NoError(t, err)
}

func TestProcessDropsMissingFile(t *testing.T) {
	worker, _, _ := workerFixture(t)

	// A job for a record that no longer exists is a no-op, not an error.
	err := worker.Process(context.Background(), entity.ThumbnailJob{UserID: "u1", FileID: "gone"})
	assert.NoError(t, err)
}

func TestProcessDropsNonImage(t *testing.T) {
	worker, fileRepo, client := workerFixture(t)
	ctx := context.Background()

	location, err := client.Write(ctx, []byte("plain text"))
	require.NoError(t, err)

	file := &entity.File{
		UserID:    "u1",
		Name:      "notes.txt",
		Type:      entity.FileTypeFile,
		ParentID:  entity.RootParentID,
		LocalPath: location,
	}
	require.NoError(t, fileRepo.Create(ctx, file))

	require.NoError(t, worker.Process(ctx, entity.ThumbnailJob{UserID: "u1", FileID: file.ID}))

	_, err = client.Read(ctx, location+"_100")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}

func TestStartConsumesQueue(t *testing.T) {
	fileRepo := repository.NewMemoryFileRepository()
	client, err := storage.NewLocalClient(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	location, err := client.Write(ctx, testPNG(t, 200, 200))
	require.NoError(t, err)

	file := &entity.File{
		UserID:    "u1",
		Name:      "pic.png",
		Type:      entity.FileTypeImage,
		ParentID:  entity.RootParentID,
		LocalPath: location,
	}
	require.NoError(t, fileRepo.Create(ctx, file))

	q := NewThumbnailQueue(4)
	worker := NewWorker(q, fileRepo, client)
	worker.Start(ctx)

	require.NoError(t, q.Enqueue(entity.ThumbnailJob{UserID: "u1", FileID: file.ID}))
	q.Close()

	// The worker exits once the queue is drained; poll for the variant.
	assert.Eventually(t, func() bool {
		_, err := client.Read(ctx, location+"_100")
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}
