package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filedock/internal/domain/entity"
)

func TestEnqueueAndReceive(t *testing.T) {
	q := NewThumbnailQueue(4)
	defer q.Close()

	job := entity.ThumbnailJob{UserID: "u1", FileID: "f1"}
	require.NoError(t, q.Enqueue(job))

	got := <-q.Jobs()
	assert.Equal(t, job, got)
}

func TestEnqueueFullQueue(t *testing.T) {
	q := NewThumbnailQueue(1)
	defer q.Close()

	require.NoError(t, q.Enqueue(entity.ThumbnailJob{FileID: "f1"}))

	// Second job does not fit; Enqueue must refuse rather than block.
	err := q.Enqueue(entity.ThumbnailJob{FileID: "f2"})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestEnqueueAfterClose(t *testing.T) {
	q := NewThumbnailQueue(4)
	q.Close()

	err := q.Enqueue(entity.ThumbnailJob{FileID: "f1"})
	assert.ErrorIs(t, err, ErrQueueClosed)

	// Closing twice is safe.
	q.Close()
}

func TestCloseDrains(t *testing.T) {
	q := NewThumbnailQueue(4)
	require.NoError(t, q.Enqueue(entity.ThumbnailJob{FileID: "f1"}))
	q.Close()

	// Buffered jobs survive Close; the channel then reports closed.
	job, ok := <-q.Jobs()
	assert.True(t, ok)
	assert.Equal(t, "f1", job.FileID)

	_, ok = <-q.Jobs()
	assert.False(t, ok)
}
