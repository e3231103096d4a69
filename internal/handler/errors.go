package handler

import (
	"errors"
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// mapServiceError translates service failures into the API status
// conventions: missing entities are 404, rule/input failures are 400, auth
// failures are 401. Anything else bubbles up as a 500.
func mapServiceError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrPromoCodeExists),
		errors.Is(err, service.ErrPromoInactive),
		errors.Is(err, service.ErrPromoExpired),
		errors.Is(err, service.ErrPromoLimitReached),
		errors.Is(err, service.ErrBadDiscountType),
		errors.Is(err, service.ErrCaptchaFailed),
		errors.Is(err, service.ErrContactCaptchaFailed),
		errors.Is(err, service.ErrTooManyFiles),
		errors.Is(err, service.ErrFileTooLarge),
		errors.Is(err, service.ErrBadFileType):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
