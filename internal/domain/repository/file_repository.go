package repository

import (
	"context"

	"filedock/internal/domain/entity"
)

// ListPageSize is the fixed pagination window for child listings.
const ListPageSize = 20

type FileRepository interface {
	// Create persists the record, assigning a fresh ID when none is set.
	Create(ctx context.Context, file *entity.File) error
	GetByID(ctx context.Context, id string) (*entity.File, error)
	GetByIDAndOwner(ctx context.Context, id, userID string) (*entity.File, error)
	// ListByParent returns the page-th window of children of parentID owned
	// by userID. Pages are zero-indexed; out-of-range pages yield an empty
	// slice, never an error.
	ListByParent(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error)
	SetPublic(ctx context.Context, id string, isPublic bool) (*entity.File, error)
	Count(ctx context.Context) (int64, error)
}
