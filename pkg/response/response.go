package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "clinic-assistant/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		Message: MessageSuccess,
		Data:    data,
	})
}

// Error aborts with err. An *errors.HTTPError keeps its status code;
// anything else is reported as 400 Bad Request.
func Error(c *gin.Context, err error, data map[string]any) {
	status := http.StatusBadRequest
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode
	}
	abort(c, status, err.Error(), data)
}

func Unauthorized(c *gin.Context) {
	abort(c, http.StatusUnauthorized, "Unauthorized", nil)
}

func Forbidden(c *gin.Context) {
	abort(c, http.StatusForbidden, "Forbidden", nil)
}

func TooManyRequests(c *gin.Context) {
	abort(c, http.StatusTooManyRequests, "Too many requests", nil)
}

func abort(c *gin.Context, status int, message string, data map[string]any) {
	code := status
	if status == http.StatusBadRequest {
		code = ErrorCodeBadRequest
	}
	resp := Resp{ErrorCode: code, Message: message}
	if len(data) > 0 {
		resp.Data = data
	}
	c.AbortWithStatusJSON(status, resp)
}
