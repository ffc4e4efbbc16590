package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gramavoice/internal/models"
)

// ErrNotFound is returned when a targeted row does not exist.
var ErrNotFound = errors.New("not found")

type ComplaintRepository interface {
	SaveComplaint(c *models.Complaint) error
	GetByComplaintID(complaintID string) (*models.Complaint, error)
	GetComplaints(status, category string) ([]*models.Complaint, error)
	UpdateStatus(complaintID, status string) error
	CountSince(since time.Time) (int, error)
	CountResolvedSince(since time.Time) (int, error)
	CountByCategorySince(since time.Time) ([]CategoryCount, error)
}

type complaintRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewComplaintRepository(db *sqlx.DB, logger *zap.Logger) ComplaintRepository {
	return &complaintRepository{db: db, logger: logger}
}

func (r *complaintRepository) SaveComplaint(c *models.Complaint) error {
	query := `INSERT INTO complaints (complaint_id, user_id, category, description, location, severity, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowx(query, c.ComplaintID, c.UserID, c.Category, c.Description, c.Location, c.Severity, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return storageErr("save complaint", err)
}

func (r *complaintRepository) GetByComplaintID(complaintID string) (*models.Complaint, error) {
	var c models.Complaint
	query := `SELECT id, complaint_id, user_id, category, description, location, severity, status, assigned_to, created_at, updated_at, resolved_at
	          FROM complaints WHERE complaint_id = $1`
	err := r.db.Get(&c, query, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storageErr("get complaint", ErrNotFound)
		}
		return nil, storageErr("get complaint", err)
	}
	return &c, nil
}

func (r *complaintRepository) GetComplaints(status, category string) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	query := `SELECT id, complaint_id, user_id, category, description, location, severity, status, assigned_to, created_at, updated_at, resolved_at
	          FROM complaints
	          WHERE ($1 = '' OR status = $1) AND ($2 = '' OR category = $2)
	          ORDER BY created_at DESC`
	err := r.db.Select(&complaints, query, status, category)
	if err != nil {
		return nil, storageErr("get complaints", err)
	}
	return complaints, nil
}

func (r *complaintRepository) UpdateStatus(complaintID, status string) error {
	// resolved_at is stamped once, when the complaint first reaches
	// 'resolved'; moving it back to open leaves the stamp alone.
	query := `UPDATE complaints
	          SET status = $1,
	              updated_at = NOW(),
	              resolved_at = CASE WHEN $1 = 'resolved' AND resolved_at IS NULL THEN NOW() ELSE resolved_at END
	          WHERE complaint_id = $2`
	res, err := r.db.Exec(query, status, complaintID)
	if err != nil {
		return storageErr("update complaint status", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageErr("update complaint status", err)
	}
	if rowsAffected == 0 {
		return storageErr("update complaint status", ErrNotFound)
	}
	return nil
}

func (r *complaintRepository) CountSince(since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM complaints WHERE created_at >= $1`
	err := r.db.Get(&count, query, since)
	if err != nil {
		return 0, storageErr("count complaints", err)
	}
	return count, nil
}

func (r *complaintRepository) CountResolvedSince(since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM complaints WHERE created_at >= $1 AND status = 'resolved'`
	err := r.db.Get(&count, query, since)
	if err != nil {
		return 0, storageErr("count resolved complaints", err)
	}
	return count, nil
}

func (r *complaintRepository) CountByCategorySince(since time.Time) ([]CategoryCount, error) {
	var counts []CategoryCount
	query := `SELECT category, COUNT(id) AS count
	          FROM complaints
	          WHERE created_at >= $1
	          GROUP BY category`
	err := r.db.Select(&counts, query, since)
	if err != nil {
		return nil, storageErr("count complaints by category", err)
	}
	return counts, nil
}
