package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the response for handlers that recorded an error but
// wrote nothing. The latest public error carrying an httperr.Response wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if !ge.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ge.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled request error",
				"error", c.Errors.Last().Err,
				"path", c.FullPath(),
				"request_id", GetRequestID(c))
			writeMessage(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		// a handler that returns without writing anything is a bug
		writeMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

// NotFound answers unknown routes in the API error shape.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeMessage(c, http.StatusNotFound, "Route not found")
	}
}

// MethodNotAllowed answers known paths hit with an unsupported method.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeMessage(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// CustomRecovery turns a panic into a 500 and logs where it happened.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errs.New(fmt.Sprint(r))
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(err, 16))

				writeMessage(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeMessage(c *gin.Context, status int, msg string) {
	resp := httperr.Response{Status: status}
	resp.Error.Message = msg
	c.AbortWithStatusJSON(status, resp)
}
