package handlers

import (
	"github.com/gin-gonic/gin"
)

// contextString reads a string value set by middleware.
func contextString(c *gin.Context, key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
