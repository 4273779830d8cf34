package http

import (
	"errors"
	"net/http"

	"clinic-assistant/internal/task"
	pkgErrors "clinic-assistant/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates task use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternal
	}
}
