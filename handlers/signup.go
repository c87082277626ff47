package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"speakerhub/models"
	"speakerhub/services/staging"
	"speakerhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignupHandler stages signup intent for a device until the user authenticates.
type SignupHandler struct {
	Store staging.Store
}

func NewSignupHandler(store staging.Store) *SignupHandler {
	return &SignupHandler{Store: store}
}

// StagePendingSpeakerHandler handles POST /api/signup/pending/speaker.
func (h *SignupHandler) StagePendingSpeakerHandler(c *gin.Context) {
	h.stage(c, models.PendingSpeakerKey)
}

// StagePendingUserHandler handles POST /api/signup/pending/user.
func (h *SignupHandler) StagePendingUserHandler(c *gin.Context) {
	h.stage(c, models.PendingUserKey)
}

func (h *SignupHandler) stage(c *gin.Context, key string) {
	logger := utils.GetLogger()
	deviceID := contextString(c, "deviceID")

	var req models.StagedSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid signup data", err.Error())
		return
	}
	if key == models.PendingUserKey {
		// The generic slot only carries the account type.
		req.SpeakerForm = nil
	}

	data, err := json.Marshal(req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to encode signup data", err.Error())
		return
	}
	if err := h.Store.Set(c.Request.Context(), deviceID, key, string(data)); err != nil {
		logger.Error("Failed to stage signup data", zap.String("deviceID", deviceID), zap.String("key", key), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to stage signup data", "")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "signup data staged", "key": key})
}

// GetPendingHandler handles GET /api/signup/pending and returns what is staged for the device.
func (h *SignupHandler) GetPendingHandler(c *gin.Context) {
	deviceID := contextString(c, "deviceID")
	out := gin.H{}
	for _, key := range []string{models.PendingSpeakerKey, models.PendingUserKey} {
		raw, err := h.Store.Get(c.Request.Context(), deviceID, key)
		if errors.Is(err, staging.ErrNotFound) {
			continue
		}
		if err != nil {
			utils.GetLogger().Error("Failed to read staged signup data", zap.String("deviceID", deviceID), zap.String("key", key), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to read staged data", "")
			return
		}
		out[key] = json.RawMessage(raw)
	}
	c.JSON(http.StatusOK, out)
}
