package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"speakerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a ProfileRepository backed by the "profiles" collection.
func NewMongoProfileRepo(db *mongo.Database) ProfileRepository {
	repo := &MongoProfileRepo{coll: db.Collection("profiles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create profile indexes: %v\n", err)
	}
	return repo
}

// GetByUserID retrieves a profile by user ID.
func (r *MongoProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}
	return &p, nil
}

// GetIDByUserID fetches only the profile's internal ID.
func (r *MongoProfileRepo) GetIDByUserID(ctx context.Context, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"id": 1})
	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up profile id for user %s: %w", userID, err)
	}
	return p.ID, nil
}

// UpdateByUserID $sets the non-nil fields of update on the user's profile.
func (r *MongoProfileRepo) UpdateByUserID(ctx context.Context, userID string, update models.ProfileUpdate) (int64, error) {
	if update.IsEmpty() {
		return 0, fmt.Errorf("no updatable profile fields provided")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": setDocument(update, time.Now())})
	if err != nil {
		return 0, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	return result.MatchedCount, nil
}

// setDocument builds the $set body for a partial update.
func setDocument(update models.ProfileUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if update.UserType != nil {
		set["user_type"] = *update.UserType
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.AvatarURL != nil {
		set["avatar_url"] = *update.AvatarURL
	}
	return set
}
