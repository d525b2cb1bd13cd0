package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a signup/login credential record. Password holds the bcrypt hash,
// never the plaintext.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserName     string             `bson:"userName"`
	Password     string             `bson:"password"`
	EmailAddress string             `bson:"emailAddress"`
}

type SignupInput struct {
	UserName     string
	Password     string
	EmailAddress string
}
