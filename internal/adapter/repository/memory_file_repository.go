package repository

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"filedock/internal/domain/entity"
	"filedock/internal/domain/repository"
	"filedock/pkg/errors"
)

// memoryFileRepository keeps records in insertion order, which defines the
// listing order. It backs tests and the storage-less development mode.
type memoryFileRepository struct {
	files []*entity.File
	byID  map[string]*entity.File
	mutex sync.RWMutex
}

func NewMemoryFileRepository() repository.FileRepository {
	return &memoryFileRepository{
		byID: make(map[string]*entity.File),
	}
}

func (r *memoryFileRepository) Create(ctx context.Context, file *entity.File) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	now := time.Now()
	if file.CreatedAt.IsZero() {
		file.CreatedAt = now
	}
	file.UpdatedAt = now

	stored := *file
	r.files = append(r.files, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *memoryFileRepository) GetByID(ctx context.Context, id string) (*entity.File, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	file, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("File", nil)
	}
	copied := *file
	return &copied, nil
}

func (r *memoryFileRepository) GetByIDAndOwner(ctx context.Context, id, userID string) (*entity.File, error) {
	file, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if file.UserID != userID {
		return nil, errors.NotFound("File", nil)
	}
	return file, nil
}

func (r *memoryFileRepository) ListByParent(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	matched := []*entity.File{}
	for _, file := range r.files {
		if file.UserID == userID && file.ParentID == parentID {
			copied := *file
			matched = append(matched, &copied)
		}
	}

	// Guard the multiplication: a page past the representable offset can
	// only address records that do not exist.
	if page < 0 || page > math.MaxInt/repository.ListPageSize {
		return []*entity.File{}, nil
	}
	start := page * repository.ListPageSize
	if start >= len(matched) {
		return []*entity.File{}, nil
	}
	end := start + repository.ListPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *memoryFileRepository) SetPublic(ctx context.Context, id string, isPublic bool) (*entity.File, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	file, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("File", nil)
	}
	file.IsPublic = isPublic
	file.UpdatedAt = time.Now()

	copied := *file
	return &copied, nil
}

func (r *memoryFileRepository) Count(ctx context.Context) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return int64(len(r.files)), nil
}
