package handler

import (
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

func (h *UploadHandler) UploadImage(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	file, err := readUpload(header)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stored, err := h.uploadService.SaveProductImage(file.ContentType, file.Data)
	if err != nil {
		return mapServiceError(err, "")
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		URL:      stored.URL,
		Filename: stored.Filename,
	})
}
