package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

func TestMemberHandler_Add(t *testing.T) {
	var got ports.AddMembersInput
	stub := &stubMembershipService{
		addFn: func(ctx context.Context, in ports.AddMembersInput) (*ports.AddMembersResult, error) {
			got = in
			return &ports.AddMembersResult{AddedUsernames: []string{"bob", "carol"}}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/v1/projects/p1/members",
		`{"identifiers":["bob","carol@example.com"],"role":"Member"}`, testRequester)
	c.SetParamNames("project_id")
	c.SetParamValues("p1")

	if err := NewMemberHandler(stub).Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.ProjectID != "p1" || got.RequesterID != testRequester || len(got.Identifiers) != 2 || got.Role != "Member" {
		t.Fatalf("unexpected input: %+v", got)
	}
	var resp addMembersResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.AddedMembers) != 2 || resp.AddedMembers[0] != "bob" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMemberHandler_Add_EmptyIdentifiers(t *testing.T) {
	stub := &stubMembershipService{
		addFn: func(ctx context.Context, in ports.AddMembersInput) (*ports.AddMembersResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodPost, "/v1/projects/p1/members", `{"identifiers":[],"role":"Member"}`, testRequester)
	if err := NewMemberHandler(stub).Add(c); httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestMemberHandler_Add_ServiceErrorsPassThrough(t *testing.T) {
	for _, want := range []error{domain.ErrAllMembersPresent, domain.ErrNoUsersMatched, domain.ErrMembershipChanged} {
		stub := &stubMembershipService{
			addFn: func(ctx context.Context, in ports.AddMembersInput) (*ports.AddMembersResult, error) {
				return nil, want
			},
		}
		c, _ := newContext(http.MethodPost, "/v1/projects/p1/members", `{"identifiers":["bob"],"role":"Member"}`, testRequester)
		if err := NewMemberHandler(stub).Add(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestMemberHandler_UpdateRole(t *testing.T) {
	var got ports.UpdateRoleInput
	stub := &stubMembershipService{
		updateFn: func(ctx context.Context, in ports.UpdateRoleInput) error {
			got = in
			return nil
		},
	}
	c, rec := newContext(http.MethodPut, "/v1/projects/p1/members/role",
		`{"identifier":"bob","role":"Admin"}`, testRequester)
	c.SetParamNames("project_id")
	c.SetParamValues("p1")

	if err := NewMemberHandler(stub).UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || got.Identifier != "bob" || got.Role != "Admin" || got.ProjectID != "p1" {
		t.Fatalf("unexpected result: code=%d input=%+v", rec.Code, got)
	}
}

func TestMemberHandler_UpdateRole_Forbidden(t *testing.T) {
	stub := &stubMembershipService{
		updateFn: func(ctx context.Context, in ports.UpdateRoleInput) error {
			return domain.Forbidden("only Owner or Creator may grant Owner")
		},
	}
	c, _ := newContext(http.MethodPut, "/v1/projects/p1/members/role", `{"identifier":"bob","role":"Owner"}`, testRequester)
	if err := NewMemberHandler(stub).UpdateRole(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
