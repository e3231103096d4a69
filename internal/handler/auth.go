package handler

import (
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	token, err := h.authService.Login(ctx, req.Username, req.Password, req.RecaptchaToken)
	if err != nil {
		return mapServiceError(err, "")
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
