package customer

import "go.mongodb.org/mongo-driver/bson/primitive"

type LineItem struct {
	Name     string  `bson:"name"`
	Price    float64 `bson:"price"`
	Quantity int     `bson:"quantity"`
}

type Invoice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Subtotal    float64            `bson:"subtotal"`
	Tax         float64            `bson:"tax"`
	DateCreated string             `bson:"dateCreated"`
	DateShipped string             `bson:"dateShipped"`
	LineItems   []LineItem         `bson:"lineItems"`
}

type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	UserName  string             `bson:"userName"`
	Invoices  []Invoice          `bson:"invoices"`
}

type CreateCustomerInput struct {
	FirstName string
	LastName  string
	UserName  string
}

type AddInvoiceInput struct {
	Subtotal    float64
	Tax         float64
	DateCreated string
	DateShipped string
	LineItems   []LineItem
}
