package users

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/exceptions"
)

const userLinkCollection = "user_links"

type userLinkMongoRepository struct {
	Collection *mongo.Collection
}

var (
	userLinkRepositoryInstance contracts.UserLinkRepository
	onceUserLinkRepository     sync.Once
)

func NewUserLinkMongoRepository(db *mongo.Database) contracts.UserLinkRepository {
	onceUserLinkRepository.Do(func() {
		userLinkRepositoryInstance = &userLinkMongoRepository{
			Collection: db.Collection(userLinkCollection),
		}
	})
	return userLinkRepositoryInstance
}

func (r *userLinkMongoRepository) EnsureContact(ctx context.Context, identity, displayName string) (*models.UserLink, error) {
	now := time.Now()
	filter := bson.M{"identity": identity}
	update := bson.M{
		"$set": bson.M{
			"displayName": displayName,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"identity":     identity,
			"status":       models.LinkStatusUnlinked,
			"registeredAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	userLink := new(models.UserLink)
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(userLink)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpsertDocument(err)
	}
	return userLink, nil
}

func (r *userLinkMongoRepository) UpdateStatus(ctx context.Context, identity, status string) error {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"identity": identity}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
