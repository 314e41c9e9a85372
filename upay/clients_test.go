package upay

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCustomersCreate(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusCreated, `{"client":{"id":"cl_1","name":"Ana","email":"ana@example.com"}}`)
	got, err := c.Clients.Create(context.Background(), &CreateCustomerRequest{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := &Customer{ID: "cl_1", Name: "Ana", Email: "ana@example.com"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Create() mismatch (-want +got):\n%s", diff)
	}
	req := rec.last(t)
	if req.Method != http.MethodPost || req.Path != "/api/v1/clients" {
		t.Errorf("request = %s %s, want POST /api/v1/clients", req.Method, req.Path)
	}
}

func TestCustomersValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *CreateCustomerRequest
		want map[string]string
	}{
		{
			name: "missing name",
			req:  &CreateCustomerRequest{Email: "ana@example.com"},
			want: map[string]string{"name": "is required"},
		},
		{
			name: "malformed email",
			req:  &CreateCustomerRequest{Name: "Ana", Email: "ana"},
			want: map[string]string{"email": "must be a valid email address"},
		},
		{
			name: "missing email",
			req:  &CreateCustomerRequest{Name: "Ana"},
			want: map[string]string{"email": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newTestClient(t, http.StatusOK, `{}`)
			_, err := c.Clients.Create(context.Background(), tt.req)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want *ValidationError", err)
			}
			if diff := cmp.Diff(tt.want, verr.Fields); diff != "" {
				t.Errorf("Fields mismatch (-want +got):\n%s", diff)
			}
			if n := len(rec.all()); n != 0 {
				t.Errorf("server saw %d requests, want 0", n)
			}
		})
	}
}

func TestCustomersListGetUpdate(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, `{"clients":[{"id":"cl_1"}],"data":{"id":"cl_1","name":"Bia"}}`)
	ctx := context.Background()

	list, err := c.Clients.List(ctx, nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff([]Customer{{ID: "cl_1"}}, list.Data); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	got, err := c.Clients.Get(ctx, "cl_1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Bia" {
		t.Errorf("Name = %q, want Bia", got.Name)
	}

	if _, err := c.Clients.Update(ctx, "cl_1", &UpdateCustomerRequest{Name: String("Bia")}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	req := rec.last(t)
	if req.Method != http.MethodPatch || req.Body != `{"name":"Bia"}` {
		t.Errorf("request = %s %s, want PATCH {\"name\":\"Bia\"}", req.Method, req.Body)
	}
}
