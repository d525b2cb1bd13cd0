package handler

import (
	"errors"
	"net/http"

	customerdomain "record-app-go/internal/domain/customer"

	"github.com/go-chi/chi/v5"
)

type createCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
}

type lineItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type createInvoiceRequest struct {
	Subtotal    float64           `json:"subtotal"`
	Tax         float64           `json:"tax"`
	DateCreated string            `json:"dateCreated"`
	DateShipped string            `json:"dateShipped"`
	LineItems   []lineItemRequest `json:"lineItems"`
}

type customerResponse struct {
	ID        string            `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	UserName  string            `json:"userName"`
	Invoices  []invoiceResponse `json:"invoices"`
}

type invoiceResponse struct {
	ID          string             `json:"id"`
	Subtotal    float64            `json:"subtotal"`
	Tax         float64            `json:"tax"`
	DateCreated string             `json:"dateCreated"`
	DateShipped string             `json:"dateShipped"`
	LineItems   []lineItemResponse `json:"lineItems"`
}

type lineItemResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (h *Handlers) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Customers.Create(r.Context(), customerdomain.CreateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	})
	if err != nil {
		h.log.InternalError("customers.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(*created))
}

func (h *Handlers) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")

	var req createInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	lineItems := make([]customerdomain.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItems = append(lineItems, customerdomain.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	invoice, err := h.Customers.AddInvoice(r.Context(), userName, customerdomain.AddInvoiceInput{
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		DateCreated: req.DateCreated,
		DateShipped: req.DateShipped,
		LineItems:   lineItems,
	})
	if err != nil {
		if errors.Is(err, customerdomain.ErrCustomerNotFound) {
			h.log.BusinessError("customers.create_invoice: customer not found", err, "user_name", userName)
			writeError(w, http.StatusNotFound, "customer_not_found", "customer not found")
			return
		}
		h.log.InternalError("customers.create_invoice: append failed", err, "user_name", userName)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(*invoice))
}

func (h *Handlers) ListInvoices(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")

	invoices, err := h.Customers.ListInvoices(r.Context(), userName)
	if err != nil {
		if errors.Is(err, customerdomain.ErrCustomerNotFound) {
			h.log.BusinessError("customers.list_invoices: customer not found", err, "user_name", userName)
			writeError(w, http.StatusNotFound, "customer_not_found", "customer not found")
			return
		}
		h.log.InternalError("customers.list_invoices: list failed", err, "user_name", userName)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]invoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		response = append(response, toInvoiceResponse(invoice))
	}

	writeJSON(w, http.StatusOK, response)
}

func toCustomerResponse(item customerdomain.Customer) customerResponse {
	invoices := make([]invoiceResponse, 0, len(item.Invoices))
	for _, invoice := range item.Invoices {
		invoices = append(invoices, toInvoiceResponse(invoice))
	}

	return customerResponse{
		ID:        item.ID.Hex(),
		FirstName: item.FirstName,
		LastName:  item.LastName,
		UserName:  item.UserName,
		Invoices:  invoices,
	}
}

func toInvoiceResponse(item customerdomain.Invoice) invoiceResponse {
	lineItems := make([]lineItemResponse, 0, len(item.LineItems))
	for _, lineItem := range item.LineItems {
		lineItems = append(lineItems, lineItemResponse{
			Name:     lineItem.Name,
			Price:    lineItem.Price,
			Quantity: lineItem.Quantity,
		})
	}

	return invoiceResponse{
		ID:          item.ID.Hex(),
		Subtotal:    item.Subtotal,
		Tax:         item.Tax,
		DateCreated: item.DateCreated,
		DateShipped: item.DateShipped,
		LineItems:   lineItems,
	}
}
