package person

import (
	"context"

	persondomain "record-app-go/internal/domain/person"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "persons"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(collectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, person *persondomain.Person) error {
	result, err := r.coll.InsertOne(ctx, person)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		person.ID = id
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]persondomain.Person, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	persons := make([]persondomain.Person, 0)
	if err := cursor.All(ctx, &persons); err != nil {
		return nil, err
	}
	return persons, nil
}
