package service

import (
	"filedock/internal/domain/entity"
)

// ThumbnailQueue accepts jobs without blocking. A non-nil error means the
// job was not enqueued; uploads treat that as a logged, non-fatal
// degradation rather than a request failure.
type ThumbnailQueue interface {
	Enqueue(job entity.ThumbnailJob) error
}
