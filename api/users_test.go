package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

const validUserBody = `{
	"email": "ana@example.com",
	"given_name": "Ana",
	"surname": "Silva",
	"city": "Porto",
	"phone_number": "+351911222333",
	"profile_description": "experienced sitter",
	"password": "s3cret"
}`

func TestUserLifecycle(t *testing.T) {
	srv := setupServer(t)

	// create
	resp := doJSON(t, http.MethodPost, srv.URL+"/users/", validUserBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", resp.StatusCode)
	}
	var created map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("create: decode returned error: %v", err)
	}
	resp.Body.Close()
	if created["user_id"] != float64(1) {
		t.Fatalf("create: expected user_id 1, got %v", created["user_id"])
	}
	if created["email"] != "ana@example.com" {
		t.Fatalf("create: body not echoed, got %v", created["email"])
	}

	// get
	resp = doJSON(t, http.MethodGet, srv.URL+"/users/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}
	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("get: decode returned error: %v", err)
	}
	resp.Body.Close()
	if got["given_name"] != "Ana" || got["profile_description"] != "experienced sitter" {
		t.Fatalf("get: unexpected fields: %v", got)
	}

	// partial update writes every column; the response echoes the key plus
	// the supplied fields and nulls for the rest
	resp = doJSON(t, http.MethodPut, srv.URL+"/users/1", `{"city": "D"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	var updated map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("update: decode returned error: %v", err)
	}
	resp.Body.Close()
	if updated["user_id"] != float64(1) || updated["city"] != "D" {
		t.Fatalf("update: unexpected response: %v", updated)
	}
	if updated["email"] != nil {
		t.Fatalf("update: expected null email in response, got %v", updated["email"])
	}

	// the stored record now has the unsupplied fields cleared
	resp = doJSON(t, http.MethodGet, srv.URL+"/users/1", "")
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("get after update: decode returned error: %v", err)
	}
	resp.Body.Close()
	if got["city"] != "D" {
		t.Fatalf("get after update: expected city D, got %v", got["city"])
	}
	if got["email"] != "" || got["given_name"] != "" {
		t.Fatalf("get after update: expected cleared fields, got %v", got)
	}
	if got["profile_description"] != nil {
		t.Fatalf("get after update: expected null profile, got %v", got["profile_description"])
	}

	// delete
	resp = doJSON(t, http.MethodDelete, srv.URL+"/users/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	var msg map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("delete: decode returned error: %v", err)
	}
	resp.Body.Close()
	if msg["message"] != "User with id: 1 deleted successfully" {
		t.Fatalf("delete: unexpected message: %q", msg["message"])
	}

	// get after delete
	resp = doJSON(t, http.MethodGet, srv.URL+"/users/1", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.StatusCode)
	}
}

func TestUserValidation(t *testing.T) {
	srv := setupServer(t)

	// missing required fields
	resp := doJSON(t, http.MethodPost, srv.URL+"/users/", `{"email": "a@b.c"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing fields, got %d", resp.StatusCode)
	}

	// malformed JSON
	resp = doJSON(t, http.MethodPost, srv.URL+"/users/", `{"email":`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed body, got %d", resp.StatusCode)
	}

	// non-integer path key
	resp = doJSON(t, http.MethodGet, srv.URL+"/users/abc", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-integer id, got %d", resp.StatusCode)
	}
}

func TestUserUpdateAndDeleteMissingAreSilent(t *testing.T) {
	srv := setupServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/users/999", `{"city": "Faro"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update missing: expected 200, got %d", resp.StatusCode)
	}

	// the update did not create a record
	resp = doJSON(t, http.MethodGet, srv.URL+"/users/999", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after silent update: expected 404, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/users/999", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete missing: expected 200, got %d", resp.StatusCode)
	}
	var msg map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("delete missing: decode returned error: %v", err)
	}
	resp.Body.Close()
	if msg["message"] != "User with id: 999 deleted successfully" {
		t.Fatalf("delete missing: unexpected message: %q", msg["message"])
	}
}

func TestUserList(t *testing.T) {
	srv := setupServer(t)

	// empty list is a JSON array, not null
	resp := doJSON(t, http.MethodGet, srv.URL+"/users/", "")
	var users []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("list: decode returned error: %v", err)
	}
	resp.Body.Close()
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty array, got %v", users)
	}

	for i := 0; i < 3; i++ {
		body := strings.Replace(validUserBody, "ana@example.com", "u@example.com", 1)
		resp := doJSON(t, http.MethodPost, srv.URL+"/users/", body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("create %d: expected 200, got %d", i, resp.StatusCode)
		}
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/users/?skip=1&limit=1", "")
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("list page: decode returned error: %v", err)
	}
	resp.Body.Close()
	if len(users) != 1 || users[0]["user_id"] != float64(2) {
		t.Fatalf("expected page [user 2], got %v", users)
	}

	// malformed pagination falls back to defaults
	resp = doJSON(t, http.MethodGet, srv.URL+"/users/?skip=x&limit=-5", "")
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("list bad pagination: decode returned error: %v", err)
	}
	resp.Body.Close()
	if len(users) != 3 {
		t.Fatalf("expected all 3 users with default pagination, got %d", len(users))
	}
}
