package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gramavoice/internal/models"
)

type UserRepository interface {
	GetByUserID(userID string) (*models.User, error)
	CreateUser(u *models.User) error
	TouchLastInteraction(userID string) error
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) GetByUserID(userID string) (*models.User, error) {
	var u models.User
	query := `SELECT id, user_id, name, phone, village, district, state, preferred_language, created_at, last_interaction
	          FROM users WHERE user_id = $1`
	err := r.db.Get(&u, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Profile not found
		}
		return nil, storageErr("get user", err)
	}
	return &u, nil
}

func (r *userRepository) CreateUser(u *models.User) error {
	query := `INSERT INTO users (user_id, name, phone, village, district, state, preferred_language)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, last_interaction`
	err := r.db.QueryRowx(query, u.UserID, u.Name, u.Phone, u.Village, u.District, u.State, u.PreferredLanguage).
		Scan(&u.ID, &u.CreatedAt, &u.LastInteraction)
	return storageErr("create user", err)
}

// TouchLastInteraction refreshes the profile's last_interaction stamp.
// Unknown user ids are a no-op: callers are not required to have a
// profile before talking to the gateway.
func (r *userRepository) TouchLastInteraction(userID string) error {
	query := `UPDATE users SET last_interaction = NOW() WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return storageErr("touch last interaction", err)
}
