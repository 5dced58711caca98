package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"festival-flash-sale/internal/domain/user"
	"festival-flash-sale/internal/handler/httperr"
	"festival-flash-sale/internal/pkg/cookie"
	"festival-flash-sale/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxBuyerIDKey   = "buyer_id"
	ctxBuyerRoleKey = "buyer_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, "Access token required"))
			return
		}

		buyerID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(ctxBuyerIDKey, buyerID)
		c.Set(ctxBuyerRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"buyer_id": buyerID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

// bearerToken prefers the access token cookie over the Authorization header.
func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetBuyerRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
			return
		}

		if !role.AtLeast(minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.NewResponse(http.StatusForbidden, httperr.CodeForbidden, "Insufficient permissions"))
			return
		}

		c.Next()
	}
}

func GetBuyerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxBuyerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetBuyerRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxBuyerRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(user.Role)
	return role, ok
}

// SetBuyer is used by handler tests that bypass RequireAuth.
func SetBuyer(c *gin.Context, buyerID uuid.UUID, role user.Role) {
	c.Set(ctxBuyerIDKey, buyerID)
	c.Set(ctxBuyerRoleKey, role)
}
