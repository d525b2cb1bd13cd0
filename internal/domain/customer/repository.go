package customer

import "context"

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByUserName(ctx context.Context, userName string) (*Customer, error)
	// AppendInvoice atomically appends one invoice to the customer's embedded
	// sequence, preserving the order of prior entries.
	AppendInvoice(ctx context.Context, userName string, invoice *Invoice) error
}
