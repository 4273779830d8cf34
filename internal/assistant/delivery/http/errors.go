package http

import (
	"errors"
	"net/http"

	"clinic-assistant/internal/assistant"
	pkgErrors "clinic-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyText), errors.Is(err, assistant.ErrInvalidStats):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, assistant.ErrNoUser):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, assistant.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return pkgErrors.ErrInternal
	}
}
