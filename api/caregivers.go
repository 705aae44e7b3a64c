package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carelink/carelink/pkg/models"
	"github.com/carelink/carelink/pkg/repository"
)

type CaregiversHandler struct {
	caregiverRepo repository.CaregiverRepo
}

func NewCaregiversHandler(cr repository.CaregiverRepo) *CaregiversHandler {
	return &CaregiversHandler{caregiverRepo: cr}
}

type caregiverUpdateResponse struct {
	CaregiverUserID int64 `json:"caregiver_user_id"`
	models.CaregiverUpdate
}

func (h *CaregiversHandler) CreateCaregiver(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "caregiver_create", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var c models.Caregiver
	if err := json.Unmarshal(body, &c); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.caregiverRepo.CreateCaregiver(r.Context(), &c); err != nil {
		http.Error(w, "failed to create caregiver", http.StatusInternalServerError)
		return
	}

	writeJSON(w, c, http.StatusOK)
}

func (h *CaregiversHandler) ListCaregivers(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	caregivers, err := h.caregiverRepo.ListCaregivers(r.Context(), limit, skip)
	if err != nil {
		http.Error(w, "failed to list caregivers", http.StatusInternalServerError)
		return
	}
	if caregivers == nil {
		caregivers = []models.Caregiver{}
	}

	writeJSON(w, caregivers, http.StatusOK)
}

func (h *CaregiversHandler) GetCaregiver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "caregiver_user_id")
	if err != nil {
		http.Error(w, "invalid caregiver_user_id", http.StatusUnprocessableEntity)
		return
	}

	c, err := h.caregiverRepo.GetCaregiver(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to get caregiver", http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, "Caregiver not found", http.StatusNotFound)
		return
	}

	writeJSON(w, c, http.StatusOK)
}

func (h *CaregiversHandler) UpdateCaregiver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "caregiver_user_id")
	if err != nil {
		http.Error(w, "invalid caregiver_user_id", http.StatusUnprocessableEntity)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "caregiver_update", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var c models.CaregiverUpdate
	if err := json.Unmarshal(body, &c); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.caregiverRepo.UpdateCaregiver(r.Context(), id, &c); err != nil {
		http.Error(w, "failed to update caregiver", http.StatusInternalServerError)
		return
	}

	writeJSON(w, caregiverUpdateResponse{CaregiverUserID: id, CaregiverUpdate: c}, http.StatusOK)
}

func (h *CaregiversHandler) DeleteCaregiver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "caregiver_user_id")
	if err != nil {
		http.Error(w, "invalid caregiver_user_id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.caregiverRepo.DeleteCaregiver(r.Context(), id); err != nil {
		http.Error(w, "failed to delete caregiver", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": fmt.Sprintf("Caregiver with id %d deleted successfully.", id)}, http.StatusOK)
}
