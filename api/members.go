package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carelink/carelink/pkg/models"
	"github.com/carelink/carelink/pkg/repository"
)

type MembersHandler struct {
	memberRepo repository.MemberRepo
}

func NewMembersHandler(mr repository.MemberRepo) *MembersHandler {
	return &MembersHandler{memberRepo: mr}
}

type memberUpdateResponse struct {
	MemberUserID int64 `json:"member_user_id"`
	models.MemberUpdate
}

func (h *MembersHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "member_create", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var m models.Member
	if err := json.Unmarshal(body, &m); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.memberRepo.CreateMember(r.Context(), &m); err != nil {
		http.Error(w, "failed to create member", http.StatusInternalServerError)
		return
	}

	writeJSON(w, m, http.StatusOK)
}

func (h *MembersHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	members, err := h.memberRepo.ListMembers(r.Context(), limit, skip)
	if err != nil {
		http.Error(w, "failed to list members", http.StatusInternalServerError)
		return
	}
	if members == nil {
		members = []models.Member{}
	}

	writeJSON(w, members, http.StatusOK)
}

func (h *MembersHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "member_user_id")
	if err != nil {
		http.Error(w, "invalid member_user_id", http.StatusUnprocessableEntity)
		return
	}

	m, err := h.memberRepo.GetMember(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to get member", http.StatusInternalServerError)
		return
	}
	if m == nil {
		http.Error(w, "Member not found", http.StatusNotFound)
		return
	}

	writeJSON(w, m, http.StatusOK)
}

func (h *MembersHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "member_user_id")
	if err != nil {
		http.Error(w, "invalid member_user_id", http.StatusUnprocessableEntity)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "member_update", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var m models.MemberUpdate
	if err := json.Unmarshal(body, &m); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.memberRepo.UpdateMember(r.Context(), id, &m); err != nil {
		http.Error(w, "failed to update member", http.StatusInternalServerError)
		return
	}

	writeJSON(w, memberUpdateResponse{MemberUserID: id, MemberUpdate: m}, http.StatusOK)
}

func (h *MembersHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "member_user_id")
	if err != nil {
		http.Error(w, "invalid member_user_id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.memberRepo.DeleteMember(r.Context(), id); err != nil {
		http.Error(w, "failed to delete member", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": fmt.Sprintf("Member with id %d deleted successfully.", id)}, http.StatusOK)
}
