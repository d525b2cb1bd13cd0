package handler

import (
	"net/http"

	composerdomain "record-app-go/internal/domain/composer"
	customerdomain "record-app-go/internal/domain/customer"
	persondomain "record-app-go/internal/domain/person"
	teamdomain "record-app-go/internal/domain/team"
	userdomain "record-app-go/internal/domain/user"
	"record-app-go/pkg/logger"
)

type Handlers struct {
	Composers *composerdomain.Service
	Persons   *persondomain.Service
	Users     *userdomain.Service
	Customers *customerdomain.Service
	Teams     *teamdomain.Service
	log       logger.Logger
}

func New(
	composers *composerdomain.Service,
	persons *persondomain.Service,
	users *userdomain.Service,
	customers *customerdomain.Service,
	teams *teamdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Composers: composers,
		Persons:   persons,
		Users:     users,
		Customers: customers,
		Teams:     teams,
		log:       log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
