package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Signup staging endpoints (device scoped, no auth).
	StagePendingSpeakerHandler gin.HandlerFunc
	StagePendingUserHandler    gin.HandlerFunc
	GetPendingHandler          gin.HandlerFunc

	// Profile endpoints (authenticated).
	CompleteProfileHandler gin.HandlerFunc
	GetMyProfileHandler    gin.HandlerFunc
	UploadAvatarHandler    gin.HandlerFunc

	// Avatar update stream.
	AvatarStreamHandler gin.HandlerFunc
}
