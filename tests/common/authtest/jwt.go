//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"festival-flash-sale/internal/domain/user"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, buyerID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(buyerID, role, time.Now())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, buyerID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(buyerID, role, time.Now().Add(-2*h.cfg.Duration))
	require.NoError(t, err)
	return token
}
