package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

type GalleryHandler struct {
	galleryService service.GalleryService
}

func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	images, err := h.galleryService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GalleryImageCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	image, err := h.galleryService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, image)
}

func (h *GalleryHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var patch dto.GalleryImagePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if patch.Alt == nil && patch.SortOrder == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	image, err := h.galleryService.Patch(ctx, c.Param("id"), &patch)
	if err != nil {
		return mapServiceError(err, "Gallery image not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"image":   image,
	})
}

func (h *GalleryHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.galleryService.Delete(ctx, c.Param("id")); err != nil {
		return mapServiceError(err, "Gallery image not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Gallery image deleted",
	})
}

func (h *GalleryHandler) BulkUpload(c echo.Context) error {
	ctx := c.Request().Context()

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	fileHeaders := form.File["files"]
	defaultAlt := c.FormValue("default_alt")

	files := make([]service.UploadedFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := readUpload(header)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		files = append(files, *file)
	}

	result, err := h.galleryService.BulkUpload(ctx, files, defaultAlt)
	if err != nil {
		return mapServiceError(err, "")
	}

	return c.JSON(http.StatusOK, result)
}

func readUpload(header *multipart.FileHeader) (*service.UploadedFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", header.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", header.Filename, err)
	}

	return &service.UploadedFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
