package speakerRepo

import (
	"context"
	"fmt"
	"time"

	"speakerhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSpeakerRepo implements SpeakerRepository using MongoDB.
type MongoSpeakerRepo struct {
	coll *mongo.Collection
}

// NewMongoSpeakerRepo creates a SpeakerRepository backed by the "speakers" collection.
func NewMongoSpeakerRepo(db *mongo.Database) SpeakerRepository {
	repo := &MongoSpeakerRepo{coll: db.Collection("speakers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create speaker indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes indexes profile_id. It is deliberately not unique; a retried
// completion may insert a second row for the same profile.
func (r *MongoSpeakerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "profile_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new speaker document, assigning an ID and creation time when unset.
func (r *MongoSpeakerRepo) Create(ctx context.Context, speaker *models.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if speaker.ID == "" {
		speaker.ID = uuid.New().String()
	}
	if speaker.CreatedAt.IsZero() {
		speaker.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, speaker); err != nil {
		return fmt.Errorf("failed to create speaker for profile %s: %w", speaker.ProfileID, err)
	}
	return nil
}

// ListByProfileID returns every speaker document for a profile.
func (r *MongoSpeakerRepo) ListByProfileID(ctx context.Context, profileID string) ([]models.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"profile_id": profileID})
	if err != nil {
		return nil, fmt.Errorf("failed to list speakers for profile %s: %w", profileID, err)
	}
	defer cursor.Close(ctx)

	var speakers []models.Speaker
	if err := cursor.All(ctx, &speakers); err != nil {
		return nil, fmt.Errorf("failed to decode speakers: %w", err)
	}
	return speakers, nil
}
