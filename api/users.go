package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carelink/carelink/pkg/models"
	"github.com/carelink/carelink/pkg/repository"
)

type UsersHandler struct {
	userRepo repository.UserRepo
}

func NewUsersHandler(ur repository.UserRepo) *UsersHandler {
	return &UsersHandler{userRepo: ur}
}

// userUpdateResponse echoes the key plus exactly the fields the caller
// supplied; everything else serializes as null.
type userUpdateResponse struct {
	UserID int64 `json:"user_id"`
	models.UserUpdate
}

func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "user_create", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var u models.User
	if err := json.Unmarshal(body, &u); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	id, err := h.userRepo.CreateUser(r.Context(), &u)
	if err != nil {
		http.Error(w, "failed to create user", http.StatusInternalServerError)
		return
	}
	u.UserID = id

	writeJSON(w, u, http.StatusOK)
}

func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	users, err := h.userRepo.ListUsers(r.Context(), limit, skip)
	if err != nil {
		http.Error(w, "failed to list users", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, users, http.StatusOK)
}

func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusUnprocessableEntity)
		return
	}

	u, err := h.userRepo.GetUser(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, u, http.StatusOK)
}

func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusUnprocessableEntity)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "user_update", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var u models.UserUpdate
	if err := json.Unmarshal(body, &u); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.userRepo.UpdateUser(r.Context(), id, &u); err != nil {
		http.Error(w, "failed to update user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, userUpdateResponse{UserID: id, UserUpdate: u}, http.StatusOK)
}

func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.userRepo.DeleteUser(r.Context(), id); err != nil {
		http.Error(w, "failed to delete user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": fmt.Sprintf("User with id: %d deleted successfully", id)}, http.StatusOK)
}
