package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"leaddesk_backend/internal/leads/transport"
	"leaddesk_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeService struct {
	listReq *transport.ListLeadsRequest
}

func (f *fakeService) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	return transport.LeadResponse{}, nil
}

func (f *fakeService) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	return transport.LeadResponse{}, nil
}

func (f *fakeService) List(ctx context.Context, req transport.ListLeadsRequest) (transport.ListLeadsResponse, error) {
	f.listReq = &req
	return transport.ListLeadsResponse{Page: req.Page, PageSize: req.PageSize}, nil
}

func (f *fakeService) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	return transport.LeadResponse{}, nil
}

func (f *fakeService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeService) Score(ctx context.Context, id uuid.UUID) (transport.ScoreResponse, error) {
	return transport.ScoreResponse{}, nil
}

func (f *fakeService) AIScore(ctx context.Context, id uuid.UUID) (transport.AIScoreResponse, error) {
	return transport.AIScoreResponse{}, nil
}

func newTestRouter(svc LeadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := New(svc, validator.New())
	h.RegisterRoutes(engine.Group("/leads"))
	return engine
}

func TestListValidatesPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"defaults pass", "", http.StatusOK},
		{"valid page and size", "?page=2&pageSize=25", http.StatusOK},
		{"page size at cap", "?pageSize=100", http.StatusOK},
		{"page size over cap", "?page=1&pageSize=100000", http.StatusBadRequest},
		{"negative page", "?page=-1", http.StatusBadRequest},
		{"zero page size rejected by binding or tags", "?pageSize=-5", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			router := newTestRouter(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/leads"+tt.query, nil)
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK && svc.listReq != nil {
				t.Errorf("service called with %+v despite invalid query", *svc.listReq)
			}
		})
	}
}

func TestListPassesBoundValuesToService(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/leads?page=3&pageSize=10", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.listReq == nil {
		t.Fatal("service never called")
	}
	if svc.listReq.Page != 3 || svc.listReq.PageSize != 10 {
		t.Errorf("service saw page %d size %d, want 3 and 10", svc.listReq.Page, svc.listReq.PageSize)
	}
}

func TestInvalidLeadIDRejected(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	for _, path := range []string{"/leads/not-a-uuid", "/leads/not-a-uuid/score", "/leads/not-a-uuid/ai-score"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, rec.Code)
		}
	}
}
