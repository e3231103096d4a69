package handler

import (
	"errors"
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.contactService.Submit(ctx, &req); err != nil {
		if errors.Is(err, service.ErrCaptchaNotConfigured) {
			return echo.NewHTTPError(http.StatusInternalServerError, "Captcha configuration missing")
		}
		return mapServiceError(err, "")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thank you for contacting us. We'll get back to you soon!",
	})
}
