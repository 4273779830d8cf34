package httpserver

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/pkg/response"
)

const (
	HealthMessage = "Clinic assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "clinic-assistant"
)

func (srv HTTPServer) statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck also reports the environment and whether Telegram is wired.
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.statusBody("ready")
	body["environment"] = srv.environment
	body["telegram"] = srv.telegramHandler != nil
	response.OK(c, body)
}

// liveCheck
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("alive"))
}
