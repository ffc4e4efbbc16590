package models

import "time"

// User represents a citizen profile stored in the 'users' table.
type User struct {
	ID                int64     `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"user_id"`
	Name              string    `db:"name" json:"name"`
	Phone             string    `db:"phone" json:"phone"`
	Village           string    `db:"village" json:"village"`
	District          string    `db:"district" json:"district"`
	State             string    `db:"state" json:"state"`
	PreferredLanguage string    `db:"preferred_language" json:"preferred_language"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	LastInteraction   time.Time `db:"last_interaction" json:"last_interaction"`
}
