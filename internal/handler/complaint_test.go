package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gramavoice/internal/models"
	"gramavoice/internal/repository"
)

type stubComplaintRepo struct {
	complaints   []*models.Complaint
	lastStatus   string
	updateErr    error
	filterStatus string
	filterCat    string
}

func (s *stubComplaintRepo) SaveComplaint(*models.Complaint) error { return nil }

func (s *stubComplaintRepo) GetByComplaintID(id string) (*models.Complaint, error) {
	for _, c := range s.complaints {
		if c.ComplaintID == id {
			return c, nil
		}
	}
	return nil, &repository.StorageError{Op: "get complaint", Err: repository.ErrNotFound}
}

func (s *stubComplaintRepo) GetComplaints(status, category string) ([]*models.Complaint, error) {
	s.filterStatus = status
	s.filterCat = category
	return s.complaints, nil
}

func (s *stubComplaintRepo) UpdateStatus(id, status string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.lastStatus = status
	return nil
}

func (s *stubComplaintRepo) CountSince(time.Time) (int, error) { return 0, nil }
func (s *stubComplaintRepo) CountResolvedSince(time.Time) (int, error) { return 0, nil }
func (s *stubComplaintRepo) CountByCategorySince(time.Time) ([]repository.CategoryCount, error) {
	return nil, nil
}

func newComplaintRouter(repo repository.ComplaintRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewComplaintHandler(repo, zap.NewNop())
	router.GET("/api/complaints", h.GetComplaints)
	router.GET("/api/complaints/:complaint_id", h.GetComplaintByID)
	router.PATCH("/api/complaints/:complaint_id/status", h.UpdateComplaintStatus)
	return router
}

func TestGetComplaintsWithFilters(t *testing.T) {
	repo := &stubComplaintRepo{
		complaints: []*models.Complaint{{ComplaintID: "ELC-2026-1111", Category: "electricity", Status: "open"}},
	}
	router := newComplaintRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints?status=open&category=electricity", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if repo.filterStatus != "open" || repo.filterCat != "electricity" {
		t.Errorf("filters not passed through: %q, %q", repo.filterStatus, repo.filterCat)
	}

	var body struct {
		Complaints []models.Complaint `json:"complaints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Complaints) != 1 || body.Complaints[0].ComplaintID != "ELC-2026-1111" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestGetComplaintsInvalidStatusFilter(t *testing.T) {
	router := newComplaintRouter(&stubComplaintRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints?status=bogus", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetComplaintByIDNotFound(t *testing.T) {
	router := newComplaintRouter(&stubComplaintRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints/ELC-2026-0000", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUpdateComplaintStatus(t *testing.T) {
	repo := &stubComplaintRepo{}
	router := newComplaintRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/complaints/ELC-2026-1111/status",
		strings.NewReader(`{"status":"in_progress"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.lastStatus != "in_progress" {
		t.Errorf("expected status in_progress, got %q", repo.lastStatus)
	}
}

func TestUpdateComplaintStatusRejectsUnknownStatus(t *testing.T) {
	router := newComplaintRouter(&stubComplaintRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/complaints/ELC-2026-1111/status",
		strings.NewReader(`{"status":"escalated"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateComplaintStatusNotFound(t *testing.T) {
	repo := &stubComplaintRepo{
		updateErr: &repository.StorageError{Op: "update complaint status", Err: repository.ErrNotFound},
	}
	router := newComplaintRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/complaints/NOPE-2026-0000/status",
		strings.NewReader(`{"status":"closed"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
