package httpserver

import (
	"net/http"
	"time"

	"record-app-go/internal/transport/httpserver/handler"
	corsmw "record-app-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/composers", handlers.CreateComposer)
		r.Get("/composers", handlers.ListComposers)
		r.Get("/composers/{id}", handlers.GetComposer)

		r.Post("/persons", handlers.CreatePerson)
		r.Get("/persons", handlers.ListPersons)

		r.Post("/users/signup", handlers.Signup)
		r.Post("/users/login", handlers.Login)

		r.Post("/customers", handlers.CreateCustomer)
		r.Post("/customers/{userName}/invoices", handlers.CreateInvoice)
		r.Get("/customers/{userName}/invoices", handlers.ListInvoices)

		r.Post("/teams", handlers.CreateTeam)
		r.Get("/teams", handlers.ListTeams)
		r.Post("/teams/{id}/players", handlers.AssignPlayer)
		r.Get("/teams/{id}/players", handlers.ListPlayers)
		r.Delete("/teams/{id}", handlers.DeleteTeam)
	})

	return r
}
