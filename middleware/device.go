package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DeviceDetailsMiddleware requires X-Device-ID and exposes it as "deviceID".
// Staged signup data is scoped to this device.
func DeviceDetailsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader("X-Device-ID")
		if deviceID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Missing required device details: X-Device-ID",
			})
			return
		}
		c.Set("deviceID", deviceID)
		c.Set("deviceIP", getClientIP(c))
		c.Next()
	}
}
