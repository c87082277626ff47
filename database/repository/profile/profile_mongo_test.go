package profileRepo

import (
	"testing"
	"time"

	"speakerhub/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string { return &s }

func TestSetDocument(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("only user type", func(t *testing.T) {
		doc := setDocument(models.ProfileUpdate{UserType: strPtr("organizer")}, now)
		assert.Equal(t, bson.M{"updated_at": now, "user_type": "organizer"}, doc)
	})

	t.Run("speaker fields", func(t *testing.T) {
		doc := setDocument(models.ProfileUpdate{
			UserType: strPtr("both"),
			Bio:      strPtr(""),
			Location: strPtr("Lisbon"),
		}, now)
		assert.Equal(t, bson.M{
			"updated_at": now,
			"user_type":  "both",
			"bio":        "",
			"location":   "Lisbon",
		}, doc)
	})

	t.Run("avatar", func(t *testing.T) {
		doc := setDocument(models.ProfileUpdate{AvatarURL: strPtr("https://x/a.png")}, now)
		assert.Equal(t, "https://x/a.png", doc["avatar_url"])
		assert.NotContains(t, doc, "user_type")
	})
}
