package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"filedock/internal/usecase"
	"filedock/pkg/errors"
	"filedock/pkg/response"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

// Upload accepts a folder, file or image. Field validation happens in the
// use case so the error messages stay exact across both entry points.
func (h *FileHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.fileUseCase.Upload(c.Request().Context(), getUserIDFromContext(c), usecase.UploadInput{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result.File)
}

func (h *FileHandler) Index(c echo.Context) error {
	parentID := c.QueryParam("parentId")

	page := 0
	if p := c.QueryParam("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			page = parsed
		}
	}

	files, err := h.fileUseCase.List(c.Request().Context(), getUserIDFromContext(c), parentID, page)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, files)
}

func (h *FileHandler) Show(c echo.Context) error {
	file, err := h.fileUseCase.Get(c.Request().Context(), getUserIDFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, file)
}

// Content streams raw bytes, optionally a pre-generated size variant.
func (h *FileHandler) Content(c echo.Context) error {
	data, contentType, err := h.fileUseCase.Content(
		c.Request().Context(),
		getUserIDFromContext(c),
		c.Param("id"),
		c.QueryParam("size"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return c.Blob(http.StatusOK, contentType, data)
}

func (h *FileHandler) Publish(c echo.Context) error {
	return h.setVisibility(c, true)
}

func (h *FileHandler) Unpublish(c echo.Context) error {
	return h.setVisibility(c, false)
}

func (h *FileHandler) setVisibility(c echo.Context, isPublic bool) error {
	file, err := h.fileUseCase.SetVisibility(c.Request().Context(), getUserIDFromContext(c), c.Param("id"), isPublic)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, file)
}
