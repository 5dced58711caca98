package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"festival-flash-sale/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	requestIDKey  = "request_id"
	outcomeKey    = "sale_outcome"
	requestHeader = "X-Request-ID"
)

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := c.GetHeader(requestHeader)
		if requestID == "" {
			requestID = l.generateRequestID()
		}

		c.Set(requestIDKey, requestID)
		c.Header(requestHeader, requestID)

		buyerID, role := extractBuyerContext(c)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}

		if buyerID != "" {
			logAttrs = append(logAttrs, slog.String("buyer_id", buyerID))
		}
		if role != "" {
			logAttrs = append(logAttrs, slog.String("role", role))
		}

		if resourceID := c.Param("resourceId"); resourceID != "" {
			logAttrs = append(logAttrs, slog.String("resource_id", resourceID))
		}

		// A sale opening brings a burst of identical requests; the start line is debug only.
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", logAttrs...)

		c.Next()

		duration := time.Since(startTime)
		statusCode := c.Writer.Status()

		responseAttrs := make([]slog.Attr, len(logAttrs), len(logAttrs)+3)
		copy(responseAttrs, logAttrs)
		responseAttrs = append(responseAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", duration),
		)

		if responseSize := c.Writer.Size(); responseSize > 0 {
			responseAttrs = append(responseAttrs, slog.Int("response_size", responseSize))
		}

		if len(c.Errors) > 0 {
			responseAttrs = append(responseAttrs, slog.String("errors", c.Errors.String()))
		}

		outcome := c.GetString(outcomeKey)
		if outcome != "" {
			responseAttrs = append(responseAttrs, slog.String("outcome", outcome))
		}

		l.logger.LogAttrs(c.Request.Context(), completionLevel(statusCode, outcome), "Request completed", responseAttrs...)
	}
}

func NewLogger(cfg config.LogConfig) *Logger {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{
		logger:   logger,
		cfg:      cfg,
		timezone: timezone,
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// completionLevel keeps expected outcomes such as sold out or not admitted at
// info, whatever their status code.
func completionLevel(status int, outcome string) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400 && outcome == "":
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// SetOutcome records the sale outcome a handler answered with.
func SetOutcome(c *gin.Context, outcome string) {
	c.Set(outcomeKey, outcome)
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// LoggingMiddleware logs through logger, or through a logger built from cfg
// when logger is nil.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	if logger == nil {
		return NewLogger(cfg).LoggingMiddleware()
	}
	l := &Logger{
		logger:   logger,
		cfg:      cfg,
		timezone: time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset),
	}
	return l.LoggingMiddleware()
}

func (l *Logger) generateRequestID() string {
	timestamp := time.Now().In(l.timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}

	randomHex := hex.EncodeToString(randomBytes)
	return fmt.Sprintf("%s-%s", timestamp, randomHex)
}

func extractBuyerContext(c *gin.Context) (buyerID, role string) {
	if claims, exists := c.Get("jwt_claims"); exists {
		if claimsMap, ok := claims.(map[string]any); ok {
			if bid, ok := claimsMap["buyer_id"].(string); ok {
				buyerID = bid
			}
			if r, ok := claimsMap["role"].(string); ok {
				role = r
			}
		}
	}

	if buyerID == "" {
		buyerID = c.GetHeader("X-Buyer-ID")
	}

	return
}

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}
