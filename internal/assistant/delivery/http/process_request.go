package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/model"
	pkgErrors "clinic-assistant/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processSendMessageReq(c *gin.Context) (model.Scope, sendMessageReq, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, sendMessageReq{}, err
	}
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func (h *handler) processSuggestionReq(c *gin.Context) (suggestionReq, error) {
	var req suggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

func (h *handler) processSessionReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, "", err
	}
	return sc, c.Param("id"), nil
}

func (h *handler) processUpdateStatsReq(c *gin.Context) (model.Scope, statsReq, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, statsReq{}, err
	}
	var req statsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}
