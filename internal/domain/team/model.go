package team

import "go.mongodb.org/mongo-driver/bson/primitive"

type Player struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Salary    float64            `bson:"salary"`
}

type Team struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Mascot  string             `bson:"mascot"`
	Players []Player           `bson:"players"`
}

type CreateTeamInput struct {
	Name    string
	Mascot  string
	Players []Player
}

type AddPlayerInput struct {
	FirstName string
	LastName  string
	Salary    float64
}
