package models

import "time"

// Account types a user can opt into.
const (
	UserTypeSpeaker   = "speaker"
	UserTypeOrganizer = "organizer"
	UserTypeBoth      = "both"
)

// Profile is the canonical per-user account record.
type Profile struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	UserType  string    `bson:"user_type,omitempty" json:"userType,omitempty"`
	FullName  string    `bson:"full_name,omitempty" json:"fullName,omitempty"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	AvatarURL string    `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	FCMToken  string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProfileUpdate is a partial profile update. Nil fields are left untouched.
type ProfileUpdate struct {
	UserType  *string
	Bio       *string
	Location  *string
	AvatarURL *string
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return u.UserType == nil && u.Bio == nil && u.Location == nil && u.AvatarURL == nil
}

// IsSpeakerType reports whether the account type includes the speaker role.
func IsSpeakerType(userType string) bool {
	return userType == UserTypeSpeaker || userType == UserTypeBoth
}

// IsValidUserType reports whether userType is one of the known account types.
func IsValidUserType(userType string) bool {
	switch userType {
	case UserTypeSpeaker, UserTypeOrganizer, UserTypeBoth:
		return true
	}
	return false
}
