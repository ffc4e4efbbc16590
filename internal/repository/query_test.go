package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gramavoice/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestQueryRepository_SaveQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now)

	mock.ExpectQuery("INSERT INTO queries").
		WithArgs("user_1", "बिजली नहीं है", nil, "hi", "complaint", "electricity", "completed", "response", 0.9, false).
		WillReturnRows(rows)

	q := &models.Query{
		UserID:          "user_1",
		QueryText:       "बिजली नहीं है",
		Language:        "hi",
		DetectedIntent:  "complaint",
		ServiceCategory: "electricity",
		Status:          "completed",
		AIResponse:      "response",
		ConfidenceScore: 0.9,
	}
	if err := repo.SaveQuery(q); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if q.ID != 7 {
		t.Errorf("expected id 7, got %d", q.ID)
	}
	if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestQueryRepository_SaveQuery_StorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	mock.ExpectQuery("INSERT INTO queries").
		WillReturnError(errors.New("connection refused"))

	err := repo.SaveQuery(&models.Query{UserID: "u", Status: "completed"})
	if err == nil {
		t.Fatal("expected an error")
	}

	var se *StorageError
	if !errors.As(err, &se) {
		t.Errorf("expected StorageError, got %T", err)
	}
}

func TestQueryRepository_GetUserHistory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	newer := time.Now()
	older := newer.Add(-time.Hour)
	cols := []string{"id", "user_id", "query_text", "query_audio_path", "language", "detected_intent", "service_category", "status", "ai_response", "confidence_score", "resolution_time", "resolved", "created_at", "updated_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(int64(2), "user_1", "दूसरा", nil, "hi", "information", "general", "completed", "r2", 0.85, nil, false, newer, newer).
		AddRow(int64(1), "user_1", "पहला", nil, "hi", "check_status", "pension", "completed", "r1", 0.9, nil, true, older, older)

	mock.ExpectQuery("SELECT (.+) FROM queries WHERE user_id (.+) ORDER BY created_at DESC (.+) LIMIT").
		WithArgs("user_1", 50).
		WillReturnRows(rows)

	queries, err := repo.GetUserHistory("user_1", 50)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(queries) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(queries))
	}
	if queries[0].ID != 2 || queries[1].ID != 1 {
		t.Errorf("expected newest-first order, got ids %d, %d", queries[0].ID, queries[1].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestQueryRepository_GetUserHistory_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM queries WHERE user_id").
		WithArgs("nobody", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	queries, err := repo.GetUserHistory("nobody", 50)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(queries) != 0 {
		t.Errorf("expected empty result, got %d rows", len(queries))
	}
}

func TestQueryRepository_SetResolved_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	mock.ExpectExec("UPDATE queries SET resolved").
		WithArgs(true, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetResolved(99, true)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestQueryRepository_CountSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	since := time.Now().AddDate(0, 0, -7)
	mock.ExpectQuery("SELECT COUNT\\(id\\) FROM queries").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountSince(since)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 12 {
		t.Errorf("expected 12, got %d", count)
	}
}

func TestQueryRepository_CountByServiceSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	since := time.Now().AddDate(0, 0, -7)
	rows := sqlmock.NewRows([]string{"service", "count"}).
		AddRow("pension", 5).
		AddRow("electricity", 2)

	mock.ExpectQuery("SELECT service_category AS service, COUNT\\(id\\) AS count").
		WithArgs(since).
		WillReturnRows(rows)

	counts, err := repo.CountByServiceSince(since)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Zero-activity services are simply absent, not zero-filled.
	if len(counts) != 2 {
		t.Fatalf("expected 2 grouped rows, got %d", len(counts))
	}
	if counts[0].Service != "pension" || counts[0].Count != 5 {
		t.Errorf("unexpected first row: %+v", counts[0])
	}
}

func TestQueryRepository_DailyCountsSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueryRepository(db, zap.NewNop())

	since := time.Now().AddDate(0, 0, -7)
	rows := sqlmock.NewRows([]string{"date", "count"}).
		AddRow("2026-08-26", 3).
		AddRow("2026-08-27", 8)

	mock.ExpectQuery("GROUP BY DATE\\(created_at\\)").
		WithArgs(since).
		WillReturnRows(rows)

	counts, err := repo.DailyCountsSince(since)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(counts) != 2 || counts[1].Date != "2026-08-27" {
		t.Errorf("unexpected daily counts: %+v", counts)
	}
}
