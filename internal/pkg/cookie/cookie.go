package cookie

import (
	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// GetAccessToken returns the access token cookie, empty when absent.
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
