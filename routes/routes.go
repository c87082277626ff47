package routes

import (
	"net/http"
	"time"

	"speakerhub/handlers"
	"speakerhub/middleware"
	"speakerhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSignupRoutes registers the device-scoped staging endpoints.
func RegisterSignupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/signup")
	{
		api.Use(middleware.DeviceDetailsMiddleware())
		api.POST("/pending/speaker", hb.StagePendingSpeakerHandler)
		api.POST("/pending/user", hb.StagePendingUserHandler)
		api.GET("/pending", hb.GetPendingHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.DeviceDetailsMiddleware(), middleware.JWTAuthUserMiddleware())
		api.POST("/complete", hb.CompleteProfileHandler)
		api.GET("/me", hb.GetMyProfileHandler)
		api.POST("/avatar", hb.UploadAvatarHandler)
	}
}

// RegisterAvatarRoutes registers the avatar update stream.
func RegisterAvatarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/avatars/stream", hb.AvatarStreamHandler)
}

// RegisterHealthRoute registers a health-check endpoint serving the latest
// dependency snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy && !status.CheckedAt.IsZero() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Device-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterSignupRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterAvatarRoutes(r, hb)
	RegisterHealthRoute(r)
}
