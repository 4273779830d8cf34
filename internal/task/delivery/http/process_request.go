package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/model"
	pkgErrors "clinic-assistant/pkg/errors"
)

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, listReq{}, pkgErrors.ErrUnauthorized
	}
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func (h *handler) processIDReq(c *gin.Context) (model.Scope, string, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, "", pkgErrors.ErrUnauthorized
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", errMissingID
	}
	return sc, id, nil
}
