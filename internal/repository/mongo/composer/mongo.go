package composer

import (
	"context"
	"errors"

	composerdomain "record-app-go/internal/domain/composer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "composers"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(collectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, composer *composerdomain.Composer) error {
	result, err := r.coll.InsertOne(ctx, composer)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		composer.ID = id
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]composerdomain.Composer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	composers := make([]composerdomain.Composer, 0)
	if err := cursor.All(ctx, &composers); err != nil {
		return nil, err
	}
	return composers, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, composerID string) (*composerdomain.Composer, error) {
	oid, err := primitive.ObjectIDFromHex(composerID)
	if err != nil {
		return nil, composerdomain.ErrInvalidID
	}

	var found composerdomain.Composer
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&found); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, composerdomain.ErrComposerNotFound
		}
		return nil, err
	}
	return &found, nil
}
