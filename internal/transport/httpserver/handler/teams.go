package handler

import (
	"errors"
	"net/http"

	teamdomain "record-app-go/internal/domain/team"

	"github.com/go-chi/chi/v5"
)

type playerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Salary    float64 `json:"salary"`
}

type createTeamRequest struct {
	Name    string          `json:"name"`
	Mascot  string          `json:"mascot"`
	Players []playerRequest `json:"players"`
}

type playerResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Salary    float64 `json:"salary"`
}

type teamResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Mascot  string           `json:"mascot"`
	Players []playerResponse `json:"players"`
}

func (h *Handlers) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	players := make([]teamdomain.Player, 0, len(req.Players))
	for _, player := range req.Players {
		players = append(players, teamdomain.Player{
			FirstName: player.FirstName,
			LastName:  player.LastName,
			Salary:    player.Salary,
		})
	}

	created, err := h.Teams.Create(r.Context(), teamdomain.CreateTeamInput{
		Name:    req.Name,
		Mascot:  req.Mascot,
		Players: players,
	})
	if err != nil {
		h.log.InternalError("teams.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponse(*created))
}

func (h *Handlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Teams.List(r.Context())
	if err != nil {
		h.log.InternalError("teams.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]teamResponse, 0, len(teams))
	for _, item := range teams {
		response = append(response, toTeamResponse(item))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	var req playerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Teams.AddPlayer(r.Context(), teamID, teamdomain.AddPlayerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Salary:    req.Salary,
	})
	if err != nil {
		h.writeTeamError(w, err, "teams.assign_player", teamID)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponse(*updated))
}

func (h *Handlers) ListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	players, err := h.Teams.ListPlayers(r.Context(), teamID)
	if err != nil {
		h.writeTeamError(w, err, "teams.list_players", teamID)
		return
	}

	response := make([]playerResponse, 0, len(players))
	for _, player := range players {
		response = append(response, toPlayerResponse(player))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	deleted, err := h.Teams.Delete(r.Context(), teamID)
	if err != nil {
		h.writeTeamError(w, err, "teams.delete", teamID)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponse(*deleted))
}

func (h *Handlers) writeTeamError(w http.ResponseWriter, err error, op, teamID string) {
	switch {
	case errors.Is(err, teamdomain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid team id")
	case errors.Is(err, teamdomain.ErrTeamNotFound):
		h.log.BusinessError(op+": team not found", err, "team_id", teamID)
		writeError(w, http.StatusNotFound, "team_not_found", "team not found")
	default:
		h.log.InternalError(op+": failed", err, "team_id", teamID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func toTeamResponse(item teamdomain.Team) teamResponse {
	players := make([]playerResponse, 0, len(item.Players))
	for _, player := range item.Players {
		players = append(players, toPlayerResponse(player))
	}

	return teamResponse{
		ID:      item.ID.Hex(),
		Name:    item.Name,
		Mascot:  item.Mascot,
		Players: players,
	}
}

func toPlayerResponse(item teamdomain.Player) playerResponse {
	return playerResponse{
		ID:        item.ID.Hex(),
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Salary:    item.Salary,
	}
}
