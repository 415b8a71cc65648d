package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/cribnosh/nosh-backend/api/middleware"
	connectionssvc "github.com/cribnosh/nosh-backend/internal/connections"
	"github.com/cribnosh/nosh-backend/pkg/pagination"
)

type stubConnectionsService struct {
	list      *connectionssvc.ConnectionList
	err       error
	gotUserID uuid.UUID
	gotParams pagination.Params
}

func (s *stubConnectionsService) ConnectPairwise(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

func (s *stubConnectionsService) ListConnections(_ context.Context, userID uuid.UUID, params pagination.Params) (*connectionssvc.ConnectionList, error) {
	s.gotUserID = userID
	s.gotParams = params
	return s.list, s.err
}

func TestConnectionsListSuccess(t *testing.T) {
	userID := uuid.New()
	svc := &stubConnectionsService{list: &connectionssvc.ConnectionList{
		Connections: []connectionssvc.ConnectionSummary{{UserID: uuid.New(), Name: "Alice Wong", Initials: "AW"}},
		Total:       1,
	}}
	handler := ConnectionsList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/connections?limit=5", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotUserID != userID {
		t.Fatalf("user id not taken from context")
	}
	if svc.gotParams.Limit != 5 {
		t.Fatalf("limit not parsed, got %d", svc.gotParams.Limit)
	}

	var envelope struct {
		Data connectionssvc.ConnectionList `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 1 || envelope.Data.Connections[0].Initials != "AW" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestConnectionsListMissingIdentity(t *testing.T) {
	handler := ConnectionsList(&stubConnectionsService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/connections", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestConnectionsListBadLimit(t *testing.T) {
	handler := ConnectionsList(&stubConnectionsService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/connections?limit=nope", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
