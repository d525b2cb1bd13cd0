package composer

import "go.mongodb.org/mongo-driver/bson/primitive"

type Composer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
}

type CreateComposerInput struct {
	FirstName string
	LastName  string
}
