package customer

import (
	"context"
	"errors"

	customerdomain "record-app-go/internal/domain/customer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "customers"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(collectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, customer *customerdomain.Customer) error {
	result, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		customer.ID = id
	}
	return nil
}

func (r *MongoRepository) GetByUserName(ctx context.Context, userName string) (*customerdomain.Customer, error) {
	var found customerdomain.Customer
	if err := r.coll.FindOne(ctx, bson.M{"userName": userName}).Decode(&found); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerdomain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &found, nil
}

// AppendInvoice uses $push so concurrent appends to one customer cannot
// overwrite each other.
func (r *MongoRepository) AppendInvoice(ctx context.Context, userName string, invoice *customerdomain.Invoice) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"userName": userName},
		bson.M{"$push": bson.M{"invoices": invoice}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return customerdomain.ErrCustomerNotFound
	}
	return nil
}
