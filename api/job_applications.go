package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carelink/carelink/pkg/models"
	"github.com/carelink/carelink/pkg/repository"
)

// JobApplicationsHandler has no update endpoint: applications are immutable
// once filed.
type JobApplicationsHandler struct {
	applicationRepo repository.JobApplicationRepo
}

func NewJobApplicationsHandler(ar repository.JobApplicationRepo) *JobApplicationsHandler {
	return &JobApplicationsHandler{applicationRepo: ar}
}

func (h *JobApplicationsHandler) CreateJobApplication(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "job_application_create", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var a models.JobApplication
	if err := json.Unmarshal(body, &a); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.applicationRepo.CreateJobApplication(r.Context(), &a); err != nil {
		http.Error(w, "failed to create job application", http.StatusInternalServerError)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *JobApplicationsHandler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	applications, err := h.applicationRepo.ListJobApplications(r.Context(), limit, skip)
	if err != nil {
		http.Error(w, "failed to list job applications", http.StatusInternalServerError)
		return
	}
	if applications == nil {
		applications = []models.JobApplication{}
	}

	writeJSON(w, applications, http.StatusOK)
}

func (h *JobApplicationsHandler) GetJobApplication(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, err := pathID(r, "caregiver_user_id")
	if err != nil {
		http.Error(w, "invalid caregiver_user_id", http.StatusUnprocessableEntity)
		return
	}
	jobID, err := pathID(r, "job_id")
	if err != nil {
		http.Error(w, "invalid job_id", http.StatusUnprocessableEntity)
		return
	}

	a, err := h.applicationRepo.GetJobApplication(r.Context(), caregiverUserID, jobID)
	if err != nil {
		http.Error(w, "failed to get job application", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "Job application not found", http.StatusNotFound)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *JobApplicationsHandler) DeleteJobApplication(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, err := pathID(r, "caregiver_user_id")
	if err != nil {
		http.Error(w, "invalid caregiver_user_id", http.StatusUnprocessableEntity)
		return
	}
	jobID, err := pathID(r, "job_id")
	if err != nil {
		http.Error(w, "invalid job_id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.applicationRepo.DeleteJobApplication(r.Context(), caregiverUserID, jobID); err != nil {
		http.Error(w, "failed to delete job application", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": fmt.Sprintf("Job application from caregiver %d for job %d deleted successfully.", caregiverUserID, jobID)}, http.StatusOK)
}
