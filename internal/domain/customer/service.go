package customer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateCustomerInput) (*Customer, error) {
	created := Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		UserName:  input.UserName,
		Invoices:  []Invoice{},
	}

	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// AddInvoice appends an invoice to the customer identified by userName. The
// invoice is stored as submitted; the subtotal is not recomputed from the
// line items.
func (s *Service) AddInvoice(ctx context.Context, userName string, input AddInvoiceInput) (*Invoice, error) {
	lineItems := input.LineItems
	if lineItems == nil {
		lineItems = []LineItem{}
	}

	invoice := Invoice{
		ID:          primitive.NewObjectID(),
		Subtotal:    input.Subtotal,
		Tax:         input.Tax,
		DateCreated: input.DateCreated,
		DateShipped: input.DateShipped,
		LineItems:   lineItems,
	}

	if err := s.repo.AppendInvoice(ctx, userName, &invoice); err != nil {
		return nil, err
	}

	return &invoice, nil
}

func (s *Service) ListInvoices(ctx context.Context, userName string) ([]Invoice, error) {
	found, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	if found.Invoices == nil {
		return []Invoice{}, nil
	}
	return found.Invoices, nil
}
