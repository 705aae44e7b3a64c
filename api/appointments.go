package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carelink/carelink/pkg/models"
	"github.com/carelink/carelink/pkg/repository"
)

type AppointmentsHandler struct {
	appointmentRepo repository.AppointmentRepo
}

func NewAppointmentsHandler(ar repository.AppointmentRepo) *AppointmentsHandler {
	return &AppointmentsHandler{appointmentRepo: ar}
}

type appointmentUpdateResponse struct {
	AppointmentID int64 `json:"appointment_id"`
	models.AppointmentUpdate
}

func (h *AppointmentsHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "appointment_create", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var a models.Appointment
	if err := json.Unmarshal(body, &a); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	id, err := h.appointmentRepo.CreateAppointment(r.Context(), &a)
	if err != nil {
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}
	a.AppointmentID = id

	writeJSON(w, a, http.StatusOK)
}

func (h *AppointmentsHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	appointments, err := h.appointmentRepo.ListAppointments(r.Context(), limit, skip)
	if err != nil {
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	writeJSON(w, appointments, http.StatusOK)
}

func (h *AppointmentsHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "appointment_id")
	if err != nil {
		http.Error(w, "invalid appointment_id", http.StatusUnprocessableEntity)
		return
	}

	a, err := h.appointmentRepo.GetAppointment(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to get appointment", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "Appointment not found", http.StatusNotFound)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *AppointmentsHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "appointment_id")
	if err != nil {
		http.Error(w, "invalid appointment_id", http.StatusUnprocessableEntity)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "appointment_update", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var a models.AppointmentUpdate
	if err := json.Unmarshal(body, &a); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.appointmentRepo.UpdateAppointment(r.Context(), id, &a); err != nil {
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, appointmentUpdateResponse{AppointmentID: id, AppointmentUpdate: a}, http.StatusOK)
}

func (h *AppointmentsHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "appointment_id")
	if err != nil {
		http.Error(w, "invalid appointment_id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.appointmentRepo.DeleteAppointment(r.Context(), id); err != nil {
		http.Error(w, "failed to delete appointment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": fmt.Sprintf("Appointment with id %d deleted successfully.", id)}, http.StatusOK)
}
