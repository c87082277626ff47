package handlers

import (
	"errors"
	"net/http"

	"speakerhub/models"
	"speakerhub/services/avatar"
	"speakerhub/services/notification"
	"speakerhub/services/profile"
	"speakerhub/services/storage"
	"speakerhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the authenticated profile endpoints.
type ProfileHandler struct {
	Completion profile.CompletionService
	Profiles   profile.ProfileService
	Storage    storage.StorageService
	Avatars    avatar.Publisher
	// Push mirrors completion toasts to the user's device. Optional.
	Push         notification.Notifier
	AvatarFolder string
}

// CompleteProfileHandler handles POST /api/profile/complete. It always
// answers 200; the outcome is carried by the result and toasts.
func (h *ProfileHandler) CompleteProfileHandler(c *gin.Context) {
	session := profile.Session{
		UserID:   contextString(c, "userID"),
		DeviceID: contextString(c, "deviceID"),
	}

	collector := notification.NewCollector()
	result := h.Completion.CompletePendingSignup(c.Request.Context(), session, notification.Fanout{collector, h.Push})

	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"toasts": collector.Toasts(),
	})
}

// GetMyProfileHandler handles GET /api/profile/me.
func (h *ProfileHandler) GetMyProfileHandler(c *gin.Context) {
	userID := contextString(c, "userID")
	p, speakers, err := h.Profiles.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		utils.JSONError(c, http.StatusNotFound, "profile not found", "")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to load profile", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load profile", "")
		return
	}

	p.AvatarURL = avatar.GetAvatarURL(p.AvatarURL, p.ID)
	if speakers == nil {
		speakers = []models.Speaker{}
	}
	c.JSON(http.StatusOK, gin.H{"profile": p, "speakers": speakers})
}

// UploadAvatarHandler handles POST /api/profile/avatar with a multipart "file".
func (h *ProfileHandler) UploadAvatarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextString(c, "userID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read file", err.Error())
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	url, err := h.Storage.UploadAvatar(ctx, file, h.AvatarFolder, userID)
	if err != nil {
		logger.Error("Avatar upload failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to upload avatar", "")
		return
	}

	p, err := h.Profiles.SetAvatar(ctx, userID, url)
	if err != nil {
		if delErr := h.Storage.DeleteFile(ctx, h.AvatarFolder+"/"+userID); delErr != nil {
			logger.Warn("Failed to remove orphaned avatar", zap.String("userID", userID), zap.Error(delErr))
		}
		if errors.Is(err, profile.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "profile not found", "")
			return
		}
		logger.Error("Failed to store avatar URL", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update avatar", "")
		return
	}

	if err := h.Avatars.PublishUpdate(ctx, avatar.Update{ProfileID: p.ID, AvatarURL: p.AvatarURL}); err != nil {
		logger.Warn("Failed to announce avatar update", zap.String("profileID", p.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"profileId": p.ID,
		"avatarUrl": avatar.GetAvatarURL(p.AvatarURL, p.ID),
	})
}
