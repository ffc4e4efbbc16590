package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gramavoice/internal/models"
)

// CategoryCount is one row of a grouped count. Categories with zero
// activity simply do not appear.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}

// ServiceCount is one row of the per-service query breakdown, keyed
// "service" to match the dashboard payload.
type ServiceCount struct {
	Service string `db:"service" json:"service"`
	Count   int    `db:"count" json:"count"`
}

// DailyCount is one day of query volume.
type DailyCount struct {
	Date  string `db:"date" json:"date"`
	Count int    `db:"count" json:"count"`
}

type QueryRepository interface {
	SaveQuery(q *models.Query) error
	GetUserHistory(userID string, limit int) ([]*models.Query, error)
	SetResolved(id int64, resolved bool) error
	CountSince(since time.Time) (int, error)
	CountByServiceSince(since time.Time) ([]ServiceCount, error)
	DailyCountsSince(since time.Time) ([]DailyCount, error)
}

type queryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewQueryRepository(db *sqlx.DB, logger *zap.Logger) QueryRepository {
	return &queryRepository{db: db, logger: logger}
}

func (r *queryRepository) SaveQuery(q *models.Query) error {
	query := `INSERT INTO queries (user_id, query_text, query_audio_path, language, detected_intent, service_category, status, ai_response, confidence_score, resolved)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowx(query, q.UserID, q.QueryText, q.QueryAudioPath, q.Language, q.DetectedIntent,
		q.ServiceCategory, q.Status, q.AIResponse, q.ConfidenceScore, q.Resolved).
		Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	return storageErr("save query", err)
}

func (r *queryRepository) GetUserHistory(userID string, limit int) ([]*models.Query, error) {
	var queries []*models.Query
	query := `SELECT id, user_id, query_text, query_audio_path, language, detected_intent, service_category, status, ai_response, confidence_score, resolution_time, resolved, created_at, updated_at
	          FROM queries
	          WHERE user_id = $1
	          ORDER BY created_at DESC
	          LIMIT $2`
	err := r.db.Select(&queries, query, userID, limit)
	if err != nil {
		return nil, storageErr("get user history", err)
	}
	return queries, nil
}

func (r *queryRepository) SetResolved(id int64, resolved bool) error {
	query := `UPDATE queries SET resolved = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.db.Exec(query, resolved, id)
	if err != nil {
		return storageErr("set query resolved", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageErr("set query resolved", err)
	}
	if rowsAffected == 0 {
		return storageErr("set query resolved", ErrNotFound)
	}
	return nil
}

func (r *queryRepository) CountSince(since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM queries WHERE created_at >= $1`
	err := r.db.Get(&count, query, since)
	if err != nil {
		return 0, storageErr("count queries", err)
	}
	return count, nil
}

func (r *queryRepository) CountByServiceSince(since time.Time) ([]ServiceCount, error) {
	var counts []ServiceCount
	query := `SELECT service_category AS service, COUNT(id) AS count
	          FROM queries
	          WHERE created_at >= $1
	          GROUP BY service_category`
	err := r.db.Select(&counts, query, since)
	if err != nil {
		return nil, storageErr("count queries by service", err)
	}
	return counts, nil
}

func (r *queryRepository) DailyCountsSince(since time.Time) ([]DailyCount, error) {
	var counts []DailyCount
	query := `SELECT TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS date, COUNT(id) AS count
	          FROM queries
	          WHERE created_at >= $1
	          GROUP BY DATE(created_at)
	          ORDER BY date`
	err := r.db.Select(&counts, query, since)
	if err != nil {
		return nil, storageErr("daily query counts", err)
	}
	return counts, nil
}
