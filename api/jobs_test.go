package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestJobLifecycle(t *testing.T) {
	srv := setupServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/jobs/", `{
		"member_user_id": 3,
		"required_caregiving_type": "babysitter",
		"other_requirements": "must like dogs",
		"date_posted": "2024-03-01"
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", resp.StatusCode)
	}
	var created map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("create: decode returned error: %v", err)
	}
	resp.Body.Close()
	if created["job_id"] != float64(1) {
		t.Fatalf("create: expected job_id 1, got %v", created["job_id"])
	}
	if created["date_posted"] != "2024-03-01" {
		t.Fatalf("create: unexpected date: %v", created["date_posted"])
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/jobs/1", `{"required_caregiving_type": "elderly care"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/jobs/1", "")
	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("get: decode returned error: %v", err)
	}
	resp.Body.Close()
	if got["required_caregiving_type"] != "elderly care" {
		t.Fatalf("expected updated caregiving type, got %v", got["required_caregiving_type"])
	}
	if got["other_requirements"] != nil || got["date_posted"] != nil {
		t.Fatalf("expected cleared fields, got %v", got)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/jobs/1", "")
	var msg map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("delete: decode returned error: %v", err)
	}
	resp.Body.Close()
	if msg["message"] != "Job with id 1 deleted successfully." {
		t.Fatalf("delete: unexpected message: %q", msg["message"])
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/jobs/1", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.StatusCode)
	}
}
