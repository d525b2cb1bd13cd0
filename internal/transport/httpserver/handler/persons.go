package handler

import (
	"net/http"

	persondomain "record-app-go/internal/domain/person"
)

type roleRequest struct {
	Text string `json:"text"`
}

type dependentRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type createPersonRequest struct {
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Roles      []roleRequest      `json:"roles"`
	Dependents []dependentRequest `json:"dependents"`
	BirthDate  string             `json:"birthDate"`
}

type roleResponse struct {
	Text string `json:"text"`
}

type dependentResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type personResponse struct {
	ID         string              `json:"id"`
	FirstName  string              `json:"firstName"`
	LastName   string              `json:"lastName"`
	Roles      []roleResponse      `json:"roles"`
	Dependents []dependentResponse `json:"dependents"`
	BirthDate  string              `json:"birthDate"`
}

func (h *Handlers) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req createPersonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	roles := make([]persondomain.Role, 0, len(req.Roles))
	for _, role := range req.Roles {
		roles = append(roles, persondomain.Role{Text: role.Text})
	}
	dependents := make([]persondomain.Dependent, 0, len(req.Dependents))
	for _, dependent := range req.Dependents {
		dependents = append(dependents, persondomain.Dependent{
			FirstName: dependent.FirstName,
			LastName:  dependent.LastName,
		})
	}

	created, err := h.Persons.Create(r.Context(), persondomain.CreatePersonInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Roles:      roles,
		Dependents: dependents,
		BirthDate:  req.BirthDate,
	})
	if err != nil {
		h.log.InternalError("persons.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(*created))
}

func (h *Handlers) ListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.Persons.List(r.Context())
	if err != nil {
		h.log.InternalError("persons.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]personResponse, 0, len(persons))
	for _, item := range persons {
		response = append(response, toPersonResponse(item))
	}

	writeJSON(w, http.StatusOK, response)
}

func toPersonResponse(item persondomain.Person) personResponse {
	roles := make([]roleResponse, 0, len(item.Roles))
	for _, role := range item.Roles {
		roles = append(roles, roleResponse{Text: role.Text})
	}
	dependents := make([]dependentResponse, 0, len(item.Dependents))
	for _, dependent := range item.Dependents {
		dependents = append(dependents, dependentResponse{
			FirstName: dependent.FirstName,
			LastName:  dependent.LastName,
		})
	}

	return personResponse{
		ID:         item.ID.Hex(),
		FirstName:  item.FirstName,
		LastName:   item.LastName,
		Roles:      roles,
		Dependents: dependents,
		BirthDate:  item.BirthDate,
	}
}
