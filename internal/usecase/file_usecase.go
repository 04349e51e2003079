package usecase

import (
	"context"
	"encoding/base64"
	"math"
	"mime"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"filedock/internal/domain/entity"
	"filedock/internal/domain/repository"
	"filedock/internal/domain/service"
	"filedock/pkg/errors"
	"filedock/pkg/logger"
)

type FileUseCase struct {
	fileRepo repository.FileRepository
	storage  service.BlobStorage
	queue    service.ThumbnailQueue
}

func NewFileUseCase(fileRepo repository.FileRepository, storage service.BlobStorage, queue service.ThumbnailQueue) *FileUseCase {
	return &FileUseCase{
		fileRepo: fileRepo,
		storage:  storage,
		queue:    queue,
	}
}

type UploadInput struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string // base64, required unless folder
}

// UploadResult reports the created record and whether a thumbnail job was
// actually accepted; enqueue failure never fails the upload.
type UploadResult struct {
	File            *entity.File
	ThumbnailQueued bool
}

// Upload runs the accept pipeline: validate, verify parent, persist the
// blob, then the record, then best-effort enqueue. The blob is written
// before the record so readers never observe a record without bytes; a
// failed insert rolls the blob back.
func (uc *FileUseCase) Upload(ctx context.Context, userID string, input UploadInput) (*UploadResult, error) {
	if input.Name == "" {
		return nil, errors.BadRequest("Missing name", nil)
	}
	if !entity.ValidFileType(input.Type) {
		return nil, errors.BadRequest("Invalid type", nil)
	}
	if input.Type != entity.FileTypeFolder && input.Data == "" {
		return nil, errors.BadRequest("Missing data", nil)
	}

	parentID := input.ParentID
	if parentID == "" {
		parentID = entity.RootParentID
	}
	if parentID != entity.RootParentID {
		parent, err := uc.fileRepo.GetByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return nil, errors.BadRequest("Parent not found", nil)
			}
			return nil, err
		}
		if !parent.IsFolder() {
			return nil, errors.Conflict("Parent is not a folder")
		}
	}

	file := &entity.File{
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		ParentID:  parentID,
		IsPublic:  input.IsPublic,
		CreatedAt: time.Now(),
	}

	if input.Type == entity.FileTypeFolder {
		if err := uc.fileRepo.Create(ctx, file); err != nil {
			return nil, err
		}
		return &UploadResult{File: file}, nil
	}

	data, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return nil, errors.BadRequest("Invalid data", err)
	}

	location, err := uc.storage.Write(ctx, data)
	if err != nil {
		return nil, errors.Internal("Could not save file", err)
	}

	file.LocalPath = location
	if err := uc.fileRepo.Create(ctx, file); err != nil {
		// Roll the blob back so no orphaned bytes survive a failed insert.
		if delErr := uc.storage.Delete(ctx, location); delErr != nil {
			logger.Error("Failed to clean up blob %s after insert failure: %v", location, delErr)
		}
		return nil, err
	}

	result := &UploadResult{File: file}
	if input.Type == entity.FileTypeImage {
		job := entity.ThumbnailJob{UserID: userID, FileID: file.ID}
		if err := uc.queue.Enqueue(job); err != nil {
			logger.Warn("Thumbnail enqueue failed for file %s: %v", file.ID, err)
		} else {
			result.ThumbnailQueued = true
		}
	}

	return result, nil
}

// Get is the owner-scoped single-record fetch.
func (uc *FileUseCase) Get(ctx context.Context, userID, id string) (*entity.File, error) {
	return uc.fileRepo.GetByIDAndOwner(ctx, id, userID)
}

// List returns one fixed-size page of children under parentID.
func (uc *FileUseCase) List(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error) {
	if parentID == "" {
		parentID = entity.RootParentID
	}
	if parentID != entity.RootParentID {
		if _, err := uuid.Parse(parentID); err != nil {
			return nil, errors.BadRequest("Invalid parentId", err)
		}
	}
	if page < 0 {
		page = 0
	}
	if page > math.MaxInt/repository.ListPageSize {
		// The offset would overflow; no collection has records there.
		return []*entity.File{}, nil
	}

	return uc.fileRepo.ListByParent(ctx, userID, parentID, page)
}

func (uc *FileUseCase) SetVisibility(ctx context.Context, userID, id string, isPublic bool) (*entity.File, error) {
	if _, err := uc.fileRepo.GetByIDAndOwner(ctx, id, userID); err != nil {
		return nil, err
	}
	return uc.fileRepo.SetPublic(ctx, id, isPublic)
}

// Content returns the raw bytes of a file, or of its pre-generated size
// variant. Private files are invisible to non-owners: every failure on
// that path is the same NOT_FOUND a nonexistent id produces.
func (uc *FileUseCase) Content(ctx context.Context, userID, id, size string) ([]byte, string, error) {
	file, err := uc.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !file.IsPublic && file.UserID != userID {
		return nil, "", errors.NotFound("File", nil)
	}

	if file.IsFolder() {
		return nil, "", errors.BadRequest("A folder doesn't have content", nil)
	}

	location := file.LocalPath
	if size != "" {
		location = location + "_" + size
	}

	data, err := uc.storage.Read(ctx, location)
	if err != nil {
		if err == service.ErrBlobNotFound {
			// Covers worker lag as well: a not-yet-generated variant is
			// indistinguishable from one that never will exist.
			return nil, "", errors.NotFound("File", err)
		}
		return nil, "", errors.Internal("Could not read file", err)
	}

	return data, contentTypeFor(file.Name, data), nil
}

// contentTypeFor prefers the name extension, falls back to sniffing the
// bytes, and bottoms out at a generic binary type.
func contentTypeFor(name string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	if mt := mimetype.Detect(data); mt != nil {
		return mt.String()
	}
	return "application/octet-stream"
}
