package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carelink/carelink/pkg/models"
	"github.com/carelink/carelink/pkg/repository"
)

type JobsHandler struct {
	jobRepo repository.JobRepo
}

func NewJobsHandler(jr repository.JobRepo) *JobsHandler {
	return &JobsHandler{jobRepo: jr}
}

type jobUpdateResponse struct {
	JobID int64 `json:"job_id"`
	models.JobUpdate
}

func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "job_create", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var j models.Job
	if err := json.Unmarshal(body, &j); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	id, err := h.jobRepo.CreateJob(r.Context(), &j)
	if err != nil {
		http.Error(w, "failed to create job", http.StatusInternalServerError)
		return
	}
	j.JobID = id

	writeJSON(w, j, http.StatusOK)
}

func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	jobs, err := h.jobRepo.ListJobs(r.Context(), limit, skip)
	if err != nil {
		http.Error(w, "failed to list jobs", http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	writeJSON(w, jobs, http.StatusOK)
}

func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "job_id")
	if err != nil {
		http.Error(w, "invalid job_id", http.StatusUnprocessableEntity)
		return
	}

	j, err := h.jobRepo.GetJob(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to get job", http.StatusInternalServerError)
		return
	}
	if j == nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	writeJSON(w, j, http.StatusOK)
}

func (h *JobsHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "job_id")
	if err != nil {
		http.Error(w, "invalid job_id", http.StatusUnprocessableEntity)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "job_update", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var j models.JobUpdate
	if err := json.Unmarshal(body, &j); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.jobRepo.UpdateJob(r.Context(), id, &j); err != nil {
		http.Error(w, "failed to update job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, jobUpdateResponse{JobID: id, JobUpdate: j}, http.StatusOK)
}

func (h *JobsHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "job_id")
	if err != nil {
		http.Error(w, "invalid job_id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.jobRepo.DeleteJob(r.Context(), id); err != nil {
		http.Error(w, "failed to delete job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": fmt.Sprintf("Job with id %d deleted successfully.", id)}, http.StatusOK)
}
