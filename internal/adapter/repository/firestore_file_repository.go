package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"filedock/internal/domain/entity"
	"filedock/internal/domain/repository"
	"filedock/pkg/errors"
	"filedock/pkg/logger"
)

type firestoreFileRepository struct {
	client *firestore.Client
}

func NewFirestoreFileRepository(client *firestore.Client) repository.FileRepository {
	return &firestoreFileRepository{
		client: client,
	}
}

func (r *firestoreFileRepository) Create(ctx context.Context, file *entity.File) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	now := time.Now()
	if file.CreatedAt.IsZero() {
		file.CreatedAt = now
	}
	file.UpdatedAt = now

	_, err := r.client.Collection("files").Doc(file.ID).Set(ctx, file)
	if err != nil {
		return errors.Internal("Failed to create file record", err)
	}
	return nil
}

func (r *firestoreFileRepository) GetByID(ctx context.Context, id string) (*entity.File, error) {
	doc, err := r.client.Collection("files").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("File", err)
		}
		return nil, errors.Internal("Failed to get file record", err)
	}

	var file entity.File
	if err := doc.DataTo(&file); err != nil {
		return nil, errors.Internal("Failed to parse file record", err)
	}

	return &file, nil
}

func (r *firestoreFileRepository) GetByIDAndOwner(ctx context.Context, id, userID string) (*entity.File, error) {
	file, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if file.UserID != userID {
		// Ownership mismatch is indistinguishable from absence.
		return nil, errors.NotFound("File", nil)
	}
	return file, nil
}

func (r *firestoreFileRepository) ListByParent(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error) {
	// A page past the representable offset cannot address any record;
	// multiplying first would hand the query a wrapped negative offset.
	if page < 0 || page > math.MaxInt/repository.ListPageSize {
		return []*entity.File{}, nil
	}

	query := r.client.Collection("files").
		Where("userId", "==", userID).
		Where("parentId", "==", parentID).
		OrderBy("createdAt", firestore.Asc).
		Offset(page * repository.ListPageSize).
		Limit(repository.ListPageSize)

	iter := query.Documents(ctx)
	defer iter.Stop()

	files := []*entity.File{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate file records", err)
		}

		var file entity.File
		if err := doc.DataTo(&file); err != nil {
			logger.Error("Failed to parse file record: %v", err)
			continue
		}
		files = append(files, &file)
	}

	return files, nil
}

func (r *firestoreFileRepository) SetPublic(ctx context.Context, id string, isPublic bool) (*entity.File, error) {
	_, err := r.client.Collection("files").Doc(id).Update(ctx, []firestore.Update{
		{Path: "isPublic", Value: isPublic},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("File", err)
		}
		return nil, errors.Internal("Failed to update file record", err)
	}

	return r.GetByID(ctx, id)
}

func (r *firestoreFileRepository) Count(ctx context.Context) (int64, error) {
	count, err := countCollection(ctx, r.client.Collection("files"))
	if err != nil {
		return 0, errors.Internal("Failed to count files", err)
	}
	return count, nil
}

// countCollection runs a server-side count aggregation, so a stats call
// never pulls the collection over the wire.
func countCollection(ctx context.Context, col *firestore.CollectionRef) (int64, error) {
	results, err := col.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, err
	}
	value, ok := results["all"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected aggregation result %T", results["all"])
	}
	return value.GetIntegerValue(), nil
}
