package queue

import (
	"errors"
	"sync"

	"filedock/internal/domain/entity"
	"filedock/internal/domain/service"
)

var (
	ErrQueueFull   = errors.New("thumbnail queue is full")
	ErrQueueClosed = errors.New("thumbnail queue is closed")
)

// ThumbnailQueue is an in-process buffered work queue. Enqueue never
// blocks; when the buffer is full the job is rejected and the caller
// decides whether that matters (uploads log and move on).
type ThumbnailQueue struct {
	jobs   chan entity.ThumbnailJob
	closed bool
	mutex  sync.Mutex
}

func NewThumbnailQueue(size int) *ThumbnailQueue {
	if size <= 0 {
		size = 64
	}
	return &ThumbnailQueue{
		jobs: make(chan entity.ThumbnailJob, size),
	}
}

var _ service.ThumbnailQueue = (*ThumbnailQueue)(nil)

func (q *ThumbnailQueue) Enqueue(job entity.ThumbnailJob) error {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Jobs exposes the receive side for the worker.
func (q *ThumbnailQueue) Jobs() <-chan entity.ThumbnailJob {
	return q.jobs
}

// Close stops accepting jobs and lets the worker drain the buffer.
func (q *ThumbnailQueue) Close() {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}
