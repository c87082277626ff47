package models

// Fixed keys for staged signup data.
const (
	PendingSpeakerKey = "pendingSpeakerData"
	PendingUserKey    = "pendingUserData"
)

// StagedSignup is the signup intent recorded before authentication completes.
type StagedSignup struct {
	UserType    string       `json:"userType" binding:"required,oneof=speaker organizer both"`
	SpeakerForm *SpeakerForm `json:"speakerForm,omitempty"`
}

// SpeakerForm is the speaker intake form captured during signup.
type SpeakerForm struct {
	Bio             string `json:"bio,omitempty"`
	Location        string `json:"location,omitempty"`
	Occupation      string `json:"occupation,omitempty"`
	Company         string `json:"company,omitempty"`
	PrimaryTopic    string `json:"primaryTopic,omitempty"`
	PortfolioURL    string `json:"portfolioUrl,omitempty"`
	WorkMode        string `json:"workMode,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	// HourlyRate is free text as entered on the form.
	HourlyRate string `json:"hourlyRate,omitempty"`
}
