package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

const collectionStoreProfile = "store_profile"

// profileID pins the store profile to a single document; writes upsert it.
const profileID = "store"

type StoreProfileRepository struct {
	col *mongo.Collection
}

func NewStoreProfileRepository(db *mongo.Database) *StoreProfileRepository {
	return &StoreProfileRepository{col: db.Collection(collectionStoreProfile)}
}

func (r *StoreProfileRepository) Get(ctx context.Context) (*domain.StoreProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.StoreProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": profileID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *StoreProfileRepository) Upsert(ctx context.Context, p *domain.StoreProfile) (*domain.StoreProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	saved := *p
	saved.ID = profileID

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": profileID}, &saved, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
