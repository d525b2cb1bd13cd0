package user

import (
	"context"
	"errors"

	userdomain "record-app-go/internal/domain/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "users"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(collectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, user *userdomain.User) error {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *MongoRepository) GetByUserName(ctx context.Context, userName string) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.coll.FindOne(ctx, bson.M{"userName": userName}).Decode(&found); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}
