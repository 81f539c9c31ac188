package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/clonelens/clonelens/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const profilesCollection = "contract_profiles"

type ProfilesRepository struct {
	mongoRepo *MongoRepository
}

func NewProfilesRepository(mongoRepo *MongoRepository) *ProfilesRepository {
	return &ProfilesRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *ProfilesRepository) InsertProfile(ctx context.Context, profile *models.ContractProfile) error {
	profile.CreatedAt = time.Now()
	err := r.mongoRepo.InsertOne(ctx, profilesCollection, profile)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

func (r *ProfilesRepository) GetProfilesByCollection(ctx context.Context, collection string) ([]*models.ContractProfile, error) {
	filter := bson.M{"collection": collection}

	cursor, err := r.mongoRepo.FindMany(ctx, profilesCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []*models.ContractProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	return profiles, nil
}

func (r *ProfilesRepository) CountProfilesByCollection(ctx context.Context, collection string) (int64, error) {
	filter := bson.M{"collection": collection}

	count, err := r.mongoRepo.CountDocuments(ctx, profilesCollection, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}

// GetProfilesBySelector finds profiles whose selector set contains the
// given selector. An empty collection searches across all collections.
func (r *ProfilesRepository) GetProfilesBySelector(ctx context.Context, selector, collection string) ([]*models.ContractProfile, error) {
	filter := bson.M{"selectors": selector}
	if collection != "" {
		filter["collection"] = collection
	}

	cursor, err := r.mongoRepo.FindMany(ctx, profilesCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []*models.ContractProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	return profiles, nil
}
