package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/accountd/apiserver/internal/auth"
	"github.com/accountd/apiserver/internal/services"
	"github.com/accountd/apiserver/internal/store"
	"github.com/accountd/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const minPasswordLength = 6

// UserHandler provides the account CRUD endpoints.
type UserHandler struct {
	userService *services.UserService
	log         *logrus.Logger
}

// NewUserHandler constructs a UserHandler with the provided dependencies.
func NewUserHandler(userService *services.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// UserRouter registers account routes on the given router.
func UserRouter(r chi.Router, userService *services.UserService, log *logrus.Logger) {
	handler := NewUserHandler(userService, log)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
	r.Get("/users", handler.ListUsers)
	r.Delete("/user", handler.DeleteUser)
	r.Put("/user", handler.UpdateEmail)
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteRequest struct {
	ID *int `json:"id"`
}

type UpdateEmailRequest struct {
	ID    *int    `json:"id"`
	Email *string `json:"email"`
}

type RegisterResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id"`
}

type LoginResponse struct {
	Success bool `json:"success"`
	UserID  int  `json:"userId"`
}

type ListUsersResponse struct {
	Success bool         `json:"success"`
	Users   []types.User `json:"users"`
}

type OKResponse struct {
	Success bool `json:"success"`
}

// Register creates a new user account and returns its id.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name and password are required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	// Best-effort duplicate check; the unique constraint below is what
	// actually decides races.
	if _, err := h.userService.FindIDByName(r.Context(), req.Name); err == nil {
		writeError(w, http.StatusConflict, "Name already taken")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.log.WithError(err).Error("register: duplicate check failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.WithError(err).Error("register: password hashing failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := h.userService.Create(r.Context(), req.Name, hashed, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			writeError(w, http.StatusConflict, "Name already taken")
			return
		}
		h.log.WithError(err).Error("register: insert failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{Success: true, ID: id})
}

// Login verifies a name/password pair and returns the user id. Unknown
// name and wrong password produce identical responses so callers cannot
// enumerate accounts.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name and password are required")
		return
	}

	id, hash, err := h.userService.FindCredentialsByName(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.WithError(err).Error("login: credential lookup failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.CheckPassword(req.Password, hash) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, UserID: id})
}

// ListUsers returns all accounts ordered by id.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list: query failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ListUsersResponse{Success: true, Users: users})
}

// DeleteUser permanently removes an account by id.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ID == nil {
		writeError(w, http.StatusBadRequest, "Id is required")
		return
	}

	if err := h.userService.Delete(r.Context(), *req.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("delete: statement failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, OKResponse{Success: true})
}

// UpdateEmail sets the email on an account by id.
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req UpdateEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ID == nil || req.Email == nil {
		writeError(w, http.StatusBadRequest, "Id and email are required")
		return
	}

	if err := h.userService.UpdateEmail(r.Context(), *req.ID, *req.Email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("update: statement failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, OKResponse{Success: true})
}
