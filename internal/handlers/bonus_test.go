package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GregMSThompson/bonuses-backend/internal/dto"
	"github.com/GregMSThompson/bonuses-backend/internal/models"
	"github.com/GregMSThompson/bonuses-backend/pkg/helpers"
)

type stubBonusService struct {
	called  bool
	bonuses []models.Bonus
	err     error
}

func (s *stubBonusService) ListBonuses(ctx context.Context) ([]models.Bonus, error) {
	s.called = true
	return s.bonuses, s.err
}

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func TestListBonusesSuccess(t *testing.T) {
	bonusSvc := &stubBonusService{bonuses: []models.Bonus{
		{ID: "1", BrandName: "Acme", Tags: []string{"vip"}, Type: helpers.Ptr("casino")},
	}}
	resp := &stubResponseHandler{}
	h := NewBonusHandlers(&Deps{ResponseHandler: resp, BonusSvc: bonusSvc})

	req := httptest.NewRequest(http.MethodGet, "/bonuses", nil)
	req = req.WithContext(helpers.TestCtx())
	rr := httptest.NewRecorder()

	h.ListBonuses(rr, req)

	if !bonusSvc.called {
		t.Fatalf("expected bonus service to be called")
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
	got, ok := resp.writeSuccessData.([]models.Bonus)
	if !ok || len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected response data: %#v", resp.writeSuccessData)
	}
}

func TestListBonusesServiceError(t *testing.T) {
	bonusSvc := &stubBonusService{err: errors.New("boom")}
	resp := &stubResponseHandler{}
	h := NewBonusHandlers(&Deps{ResponseHandler: resp, BonusSvc: bonusSvc})

	req := httptest.NewRequest(http.MethodGet, "/bonuses", nil)
	rr := httptest.NewRecorder()

	h.ListBonuses(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError to be called")
	}
	if !errors.Is(resp.handleError, bonusSvc.err) {
		t.Fatalf("unexpected error passed to HandleError: %v", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess should not be called on service error")
	}
}

func TestHealth(t *testing.T) {
	bonusSvc := &stubBonusService{err: errors.New("backend down")}
	resp := &stubResponseHandler{}
	h := NewBonusHandlers(&Deps{ResponseHandler: resp, BonusSvc: bonusSvc})
	h.now = func() time.Time {
		return time.Date(2025, time.March, 4, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	}

	req := httptest.NewRequest(http.MethodGet, "/bonuses/health", nil)
	rr := httptest.NewRecorder()

	h.Health(rr, req)

	if bonusSvc.called {
		t.Fatalf("health must not touch the bonus source")
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	got, ok := resp.writeSuccessData.(dto.HealthResponse)
	if !ok {
		t.Fatalf("unexpected response data: %#v", resp.writeSuccessData)
	}
	if got.Status != "ok" || got.Timestamp != "2025-03-04T09:30:00.000Z" {
		t.Fatalf("unexpected health body: %+v", got)
	}
}
