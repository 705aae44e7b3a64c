package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carelink/carelink/pkg/models"
	"github.com/carelink/carelink/pkg/repository"
)

type AddressesHandler struct {
	addressRepo repository.AddressRepo
}

func NewAddressesHandler(ar repository.AddressRepo) *AddressesHandler {
	return &AddressesHandler{addressRepo: ar}
}

type addressUpdateResponse struct {
	MemberUserID int64 `json:"member_user_id"`
	models.AddressUpdate
}

func (h *AddressesHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	if detail, err := validateBody(r.Context(), "address_create", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var a models.Address
	if err := json.Unmarshal(body, &a); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.addressRepo.CreateAddress(r.Context(), &a); err != nil {
		http.Error(w, "failed to create address", http.StatusInternalServerError)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *AddressesHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	addresses, err := h.addressRepo.ListAddresses(r.Context(), limit, skip)
	if err != nil {
		http.Error(w, "failed to list addresses", http.StatusInternalServerError)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}

	writeJSON(w, addresses, http.StatusOK)
}

func (h *AddressesHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "member_user_id")
	if err != nil {
		http.Error(w, "invalid member_user_id", http.StatusUnprocessableEntity)
		return
	}

	a, err := h.addressRepo.GetAddress(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to get address", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *AddressesHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
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
	if detail, err := validateBody(r.Context(), "address_update", body); err != nil || detail != "" {
		if detail == "" {
			detail = "invalid request body"
		}
		http.Error(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var a models.AddressUpdate
	if err := json.Unmarshal(body, &a); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := h.addressRepo.UpdateAddress(r.Context(), id, &a); err != nil {
		http.Error(w, "failed to update address", http.StatusInternalServerError)
		return
	}

	writeJSON(w, addressUpdateResponse{MemberUserID: id, AddressUpdate: a}, http.StatusOK)
}

func (h *AddressesHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "member_user_id")
	if err != nil {
		http.Error(w, "invalid member_user_id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.addressRepo.DeleteAddress(r.Context(), id); err != nil {
		http.Error(w, "failed to delete address", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": fmt.Sprintf("Address for member user id %d deleted successfully.", id)}, http.StatusOK)
}
