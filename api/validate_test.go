package api

import (
	"context"
	"testing"
)

func TestValidateBody(t *testing.T) {
	ctx := context.Background()

	valid := []byte(`{
		"email": "a@b.c",
		"given_name": "A",
		"surname": "B",
		"city": "C",
		"phone_number": "123",
		"password": "pw"
	}`)
	detail, err := validateBody(ctx, "user_create", valid)
	if err != nil {
		t.Fatalf("validateBody returned error: %v", err)
	}
	if detail != "" {
		t.Fatalf("expected valid body, got violations: %s", detail)
	}

	detail, err = validateBody(ctx, "user_create", []byte(`{"email": "a@b.c"}`))
	if err != nil {
		t.Fatalf("validateBody returned error: %v", err)
	}
	if detail == "" {
		t.Fatalf("expected violations for missing required fields")
	}

	if _, err := validateBody(ctx, "user_create", []byte(`{"email":`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}

	if _, err := validateBody(ctx, "no_such_schema", valid); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
}

func TestSchemasLoaded(t *testing.T) {
	names := []string{
		"user_create", "user_update",
		"caregiver_create", "caregiver_update",
		"member_create", "member_update",
		"address_create", "address_update",
		"job_create", "job_update",
		"job_application_create",
		"appointment_create", "appointment_update",
	}
	for _, n := range names {
		if _, ok := schemas[n]; !ok {
			t.Fatalf("schema %q not loaded", n)
		}
	}
}
