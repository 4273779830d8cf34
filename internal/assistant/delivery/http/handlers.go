package http

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Appends the message to the session transcript and returns the assistant reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendMessageReq true "Message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, sc, req.toInput(h.captureTasks))
	if err != nil {
		h.l.Warnf(ctx, "internal.assistant.delivery.http.SendMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// ExpandSuggestion godoc
// @Summary     Expand a suggestion chip
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body suggestionReq true "Chip label"
// @Success     200 {object} suggestionResp
// @Router      /api/v1/assistant/suggestions [POST]
func (h *handler) ExpandSuggestion(c *gin.Context) {
	req, err := h.processSuggestionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, suggestionResp{Text: h.uc.ExpandSuggestion(c.Request.Context(), req.Text)})
}

// Transcript godoc
// @Summary     Get session transcript
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Router      /api/v1/assistant/sessions/{id}/messages [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	sc, sessionID, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	msgs, err := h.uc.Transcript(ctx, sc, sessionID)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, transcriptResp{Messages: msgs})
}

// ResetSession godoc
// @Summary     Reset a session
// @Description Drops the transcript; the next message starts with a greeting.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/assistant/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, sessionID, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ResetSession(ctx, sc, sessionID); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Greeting godoc
// @Summary     Get the greeting for the caller's role
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} greetingResp
// @Router      /api/v1/assistant/greeting [GET]
func (h *handler) Greeting(c *gin.Context) {
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, greetingResp{Message: h.uc.Greeting(c.Request.Context(), sc.Role)})
}

// GetStats godoc
// @Summary     Get record statistics
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsReq
// @Router      /api/v1/stats [GET]
func (h *handler) GetStats(c *gin.Context) {
	response.OK(c, h.uc.Stats(c.Request.Context()))
}

// UpdateStats godoc
// @Summary     Push record statistics
// @Description Replaces the counts used by statistics replies.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body statsReq true "Counts"
// @Success     200 {object} statsReq
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/stats [PUT]
func (h *handler) UpdateStats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateStatsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	stats, err := h.uc.UpdateStats(ctx, sc, req.toModel())
	if err != nil {
		h.l.Warnf(ctx, "internal.assistant.delivery.http.UpdateStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, stats)
}
