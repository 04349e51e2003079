package queue

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"filedock/internal/domain/entity"
	"filedock/internal/domain/repository"
	"filedock/internal/domain/service"
	"filedock/pkg/errors"
	"filedock/pkg/logger"
)

// thumbnailWidths are the derived sizes generated per image, matching the
// "<location>_<width>" naming the retrieval path resolves.
var thumbnailWidths = []int{500, 250, 100}

// Worker consumes thumbnail jobs and writes resized variants back to blob
// storage. Processing is idempotent: a replayed job regenerates and
// overwrites the same variants.
type Worker struct {
	queue    *ThumbnailQueue
	fileRepo repository.FileRepository
	storage  service.BlobStorage
}

func NewWorker(queue *ThumbnailQueue, fileRepo repository.FileRepository, storage service.BlobStorage) *Worker {
	return &Worker{
		queue:    queue,
		fileRepo: fileRepo,
		storage:  storage,
	}
}

// Start consumes jobs until the context is cancelled or the queue closed.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-w.queue.Jobs():
				if !ok {
					return
				}
				if err := w.Process(ctx, job); err != nil {
					// Log and drop; there is no retry policy.
					logger.Error("Thumbnail generation failed for file %s: %v", job.FileID, err)
				}
			}
		}
	}()
}

// Process generates every thumbnail width for one job. A job referencing a
// record that no longer exists is a no-op, not an error.
func (w *Worker) Process(ctx context.Context, job entity.ThumbnailJob) error {
	file, err := w.fileRepo.GetByID(ctx, job.FileID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Debug("Dropping thumbnail job for missing file %s", job.FileID)
			return nil
		}
		return err
	}

	if file.Type != entity.FileTypeImage || file.LocalPath == "" {
		logger.Debug("Dropping thumbnail job for non-image file %s", job.FileID)
		return nil
	}

	data, err := w.storage.Read(ctx, file.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to read original blob: %w", err)
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	format := imageFormat(data)

	for _, width := range thumbnailWidths {
		thumb := imaging.Resize(src, width, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, thumb, format); err != nil {
			return fmt.Errorf("failed to encode %d thumbnail: %w", width, err)
		}

		suffix := fmt.Sprintf("%d", width)
		if err := w.storage.WriteVariant(ctx, file.LocalPath, suffix, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to store %d thumbnail: %w", width, err)
		}
	}

	logger.Debug("Generated %d thumbnails for file %s", len(thumbnailWidths), job.FileID)
	return nil
}

// imageFormat keeps thumbnails in the source encoding where possible.
func imageFormat(data []byte) imaging.Format {
	switch mimetype.Detect(data).String() {
	case "image/png":
		return imaging.PNG
	case "image/gif":
		return imaging.GIF
	default:
		return imaging.JPEG
	}
}
