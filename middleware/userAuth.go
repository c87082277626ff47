package middleware

import (
	"net/http"
	"strings"

	"speakerhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware validates the bearer token and sets "userID".
// It must run after DeviceDetailsMiddleware; a token bound to a device is
// only accepted from that device.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, tokenDeviceID, err := utils.ExtractIDsFromToken(tokenString)
		if err != nil || userID == "" {
			utils.GetLogger().Debug("Rejected token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		if tokenDeviceID != "" && tokenDeviceID != c.GetString("deviceID") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
