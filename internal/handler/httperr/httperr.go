package httperr

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Codes let clients tell a terminal answer from one worth retrying.
const (
	CodeBadRequest      = "bad_request"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeUnprocessable   = "unprocessable"
	CodeUpstream        = "upstream_failure"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal"
	CodeNotWaiting      = "not_waiting"
	CodeSaleNotOpen     = "sale_not_open"
	CodeNotOwned        = "reservation_not_owned"
	CodeReservationGone = "reservation_not_found"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail     any           `json:"detail,omitempty"`
	RetryAfter time.Duration `json:"-"`
}

func NewResponse(status int, code, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// Abort records err on the context for logging and writes resp.
func Abort(c *gin.Context, resp Response, err error) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	if resp.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(int(resp.RetryAfter.Round(time.Second)/time.Second)))
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := NewResponse(status, codeFor(status), msg)
	resp.Detail = detail
	Abort(c, resp, err)
}

// AbortRetryable answers with a Retry-After hint so a burst of buyers backs off
// instead of hammering a degraded store.
func AbortRetryable(c *gin.Context, status int, retryAfter time.Duration, err error, code, msg string) {
	resp := NewResponse(status, code, msg)
	resp.RetryAfter = max(retryAfter, time.Second)
	Abort(c, resp, err)
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnprocessableEntity:
		return CodeUnprocessable
	case http.StatusBadGateway:
		return CodeUpstream
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
