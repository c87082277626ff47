package handlers

import (
	"io"

	"speakerhub/services/avatar"

	"github.com/gin-gonic/gin"
)

// AvatarStreamHandler streams avatar updates as server-sent events until the
// client disconnects. Slow clients drop updates rather than block publishers.
func AvatarStreamHandler(b *avatar.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		updates := make(chan avatar.Update, 16)
		unsubscribe := b.Subscribe(func(u avatar.Update) {
			select {
			case updates <- u:
			default:
			}
		})
		defer unsubscribe()

		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case u := <-updates:
				c.SSEvent(avatar.EventAvatarUpdated, u)
				return true
			}
		})
	}
}
