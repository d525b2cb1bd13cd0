package team

import (
	"context"
	"errors"

	teamdomain "record-app-go/internal/domain/team"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "teams"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(collectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, team *teamdomain.Team) error {
	result, err := r.coll.InsertOne(ctx, team)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		team.ID = id
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]teamdomain.Team, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	teams := make([]teamdomain.Team, 0)
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, teamID string) (*teamdomain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, teamdomain.ErrInvalidID
	}

	var found teamdomain.Team
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&found); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, teamdomain.ErrTeamNotFound
		}
		return nil, err
	}
	return &found, nil
}

// AppendPlayer uses an atomic $push and returns the updated document, so
// concurrent appends to one team cannot lose a player.
func (r *MongoRepository) AppendPlayer(ctx context.Context, teamID string, player *teamdomain.Player) (*teamdomain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, teamdomain.ErrInvalidID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated teamdomain.Team
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"players": player}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, teamdomain.ErrTeamNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, teamID string) (*teamdomain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, teamdomain.ErrInvalidID
	}

	var deleted teamdomain.Team
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, teamdomain.ErrTeamNotFound
		}
		return nil, err
	}
	return &deleted, nil
}
