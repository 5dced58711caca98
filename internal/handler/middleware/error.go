package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"festival-flash-sale/internal/handler/httperr"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// stackDepth bounds the stack lines attached to a failed request's log entry.
const stackDepth = 12

// ErrorHandler writes the last public httperr.Response recorded on the context
// if the handler has not answered yet. Server-side failures are logged with a
// truncated stack.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		ginErr, resp, found := lastPublicResponse(c)
		if found && resp.Status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), "request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.Int("status", resp.Status),
				slog.String("code", resp.Error.Code),
				slog.String("error", ginErr.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(ginErr.Err, stackDepth)),
			)
		}

		switch {
		case c.Writer.Written():
		case found:
			c.JSON(resp.Status, resp)
		case c.Writer.Status() != http.StatusOK:
			c.Status(c.Writer.Status())
			c.Writer.WriteHeaderNow()
		default:
			c.JSON(http.StatusInternalServerError, internalError())
		}
	}
}

func lastPublicResponse(c *gin.Context) (*gin.Error, httperr.Response, bool) {
	public := c.Errors.ByType(gin.ErrorTypePublic)
	for i := len(public) - 1; i >= 0; i-- {
		if resp, ok := public[i].Meta.(httperr.Response); ok {
			return public[i], resp, true
		}
	}
	return nil, httperr.Response{}, false
}

// CustomRecovery turns a panic into a 500 and logs the sale context of the
// request.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				buyerID, _ := extractBuyerContext(c)
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					slog.String("error", fmt.Sprint(rec)),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
					slog.String("resource_id", c.Param("resourceId")),
					slog.String("buyer_id", buyerID),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	return httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error")
}
