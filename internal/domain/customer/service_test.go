package customer

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCustomerRepo struct {
	customers map[string]*Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *Customer) error {
	customer.ID = primitive.NewObjectID()
	r.customers[customer.UserName] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByUserName(ctx context.Context, userName string) (*Customer, error) {
	stored, ok := r.customers[userName]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return stored, nil
}

func (r *fakeCustomerRepo) AppendInvoice(ctx context.Context, userName string, invoice *Invoice) error {
	stored, ok := r.customers[userName]
	if !ok {
		return ErrCustomerNotFound
	}
	stored.Invoices = append(stored.Invoices, *invoice)
	return nil
}

func TestCreateCustomerEchoesFields(t *testing.T) {
	service := NewService(newFakeCustomerRepo())

	created, err := service.Create(context.Background(), CreateCustomerInput{
		FirstName: "Walter",
		LastName:  "McCue",
		UserName:  "wmccue",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.FirstName != "Walter" || created.LastName != "McCue" || created.UserName != "wmccue" {
		t.Errorf("created = %+v, fields not echoed", created)
	}
	if created.Invoices == nil || len(created.Invoices) != 0 {
		t.Errorf("invoices = %v, want empty sequence", created.Invoices)
	}
	if created.ID.IsZero() {
		t.Error("created customer has no id")
	}
}

func TestAddInvoiceAppendsInOrder(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewService(repo)

	if _, err := service.Create(context.Background(), CreateCustomerInput{UserName: "wmccue"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := service.AddInvoice(context.Background(), "wmccue", AddInvoiceInput{
		Subtotal:    100,
		Tax:         8.5,
		DateCreated: "2022-12-04",
		LineItems:   []LineItem{{Name: "widget", Price: 50, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if first.ID.IsZero() {
		t.Error("appended invoice has no id")
	}

	second, err := service.AddInvoice(context.Background(), "wmccue", AddInvoiceInput{Subtotal: 25})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	invoices, err := service.ListInvoices(context.Background(), "wmccue")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("len(invoices) = %d, want 2", len(invoices))
	}
	if invoices[0].ID != first.ID || invoices[1].ID != second.ID {
		t.Error("invoice order not preserved")
	}
	if invoices[0].Subtotal != 100 || invoices[0].Tax != 8.5 {
		t.Errorf("invoice[0] = %+v, fields not echoed", invoices[0])
	}
	if len(invoices[0].LineItems) != 1 || invoices[0].LineItems[0].Name != "widget" {
		t.Errorf("lineItems = %+v, not stored verbatim", invoices[0].LineItems)
	}
}

func TestAddInvoiceUnknownCustomer(t *testing.T) {
	service := NewService(newFakeCustomerRepo())

	_, err := service.AddInvoice(context.Background(), "nobody", AddInvoiceInput{Subtotal: 10})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}

func TestListInvoicesUnknownCustomer(t *testing.T) {
	service := NewService(newFakeCustomerRepo())

	_, err := service.ListInvoices(context.Background(), "nobody")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}
