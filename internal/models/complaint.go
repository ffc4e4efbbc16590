package models

import "time"

// Complaint represents a grievance stored in the 'complaints' table.
// One complaint row exists per complaint-classified query.
type Complaint struct {
	ID          int64      `db:"id" json:"id"`
	ComplaintID string     `db:"complaint_id" json:"complaint_id"`
	UserID      string     `db:"user_id" json:"user_id"`
	Category    string     `db:"category" json:"category"`
	Description string     `db:"description" json:"description"`
	Location    string     `db:"location" json:"location"`
	Severity    string     `db:"severity" json:"severity"` // low, medium, high, critical
	Status      string     `db:"status" json:"status"`     // open, in_progress, resolved, closed
	AssignedTo  *string    `db:"assigned_to" json:"assigned_to,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
	ResolvedAt  *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}

// Complaint lifecycle statuses. Transitions are driven by complaint
// administration endpoints, never by the query pipeline itself.
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusInProgress = "in_progress"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusClosed     = "closed"
)

// ValidComplaintStatus reports whether s is a known lifecycle status.
func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusClosed:
		return true
	}
	return false
}

const SeverityMedium = "medium"
