package person

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role struct {
	Text string `bson:"text"`
}

type Dependent struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
}

type Person struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FirstName  string             `bson:"firstName"`
	LastName   string             `bson:"lastName"`
	Roles      []Role             `bson:"roles"`
	Dependents []Dependent        `bson:"dependents"`
	BirthDate  string             `bson:"birthDate"`
}

type CreatePersonInput struct {
	FirstName  string
	LastName   string
	Roles      []Role
	Dependents []Dependent
	BirthDate  string
}
