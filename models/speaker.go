package models

import "time"

// Work modes offered on the speaker intake form.
const (
	WorkModeInPerson = "in_person"
	WorkModeVirtual  = "virtual"
	WorkModeHybrid   = "hybrid"
)

// Experience levels offered on the speaker intake form.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

// Speaker is the one-to-one speaker extension of a profile.
type Speaker struct {
	ID              string  `bson:"id" json:"id"`
	ProfileID       string  `bson:"profile_id" json:"profileId"`
	ExperienceLevel string  `bson:"experience_level" json:"experienceLevel"`
	HourlyRate      *int    `bson:"hourly_rate" json:"hourlyRate"`
	Occupation      *string `bson:"occupation" json:"occupation"`
	Company         *string `bson:"company" json:"company"`
	PrimaryTopic    *string `bson:"primary_topic" json:"primaryTopic"`
	PortfolioURL    *string `bson:"portfolio_url" json:"portfolioUrl"`
	// SecondaryLocation holds the work-mode tag.
	SecondaryLocation string    `bson:"secondary_location" json:"secondaryLocation"`
	Available         bool      `bson:"available" json:"available"`
	Verified          bool      `bson:"verified" json:"verified"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
}
