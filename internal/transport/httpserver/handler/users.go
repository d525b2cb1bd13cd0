package handler

import (
	"errors"
	"net/http"
	"strings"

	userdomain "record-app-go/internal/domain/user"
)

type signupRequest struct {
	UserName     string `json:"userName"`
	Password     string `json:"password"`
	EmailAddress string `json:"emailAddress"`
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID           string `json:"id"`
	UserName     string `json:"userName"`
	EmailAddress string `json:"emailAddress"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserName) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "userName and password are required")
		return
	}

	registered, err := h.Users.Signup(r.Context(), userdomain.SignupInput{
		UserName:     req.UserName,
		Password:     req.Password,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNameTaken) {
			h.log.BusinessError("users.signup: username taken", err, "user_name", req.UserName)
			writeError(w, http.StatusConflict, "username_taken", "username is already in use")
			return
		}
		h.log.InternalError("users.signup: signup failed", err, "user_name", req.UserName)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:           registered.ID.Hex(),
		UserName:     registered.UserName,
		EmailAddress: registered.EmailAddress,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserName) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "userName and password are required")
		return
	}

	if err := h.Users.Login(r.Context(), req.UserName, req.Password); err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			h.log.BusinessError("users.login: invalid credentials", err, "user_name", req.UserName)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
			return
		}
		h.log.InternalError("users.login: login failed", err, "user_name", req.UserName)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "user logged in"})
}
