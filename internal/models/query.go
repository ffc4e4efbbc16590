package models

import "time"

// Intent is the coarse action derived from classification.
type Intent string

const (
	IntentCheckStatus Intent = "check_status"
	IntentInformation Intent = "information"
	IntentComplaint   Intent = "complaint"
	IntentUnknown     Intent = "unknown"
)

// Category is the government-service domain tag.
type Category string

const (
	CategoryPension     Category = "pension"
	CategoryRation      Category = "ration"
	CategoryElectricity Category = "electricity"
	CategoryPMKisan     Category = "pmkisan"
	CategoryWater       Category = "water"
	CategoryHealth      Category = "health"
	CategoryGeneral     Category = "general"
)

// Query represents one processed interaction stored in the 'queries' table.
type Query struct {
	ID              int64     `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	QueryText       string    `db:"query_text" json:"query_text"`
	QueryAudioPath  *string   `db:"query_audio_path" json:"query_audio_path,omitempty"`
	Language        string    `db:"language" json:"language"`
	DetectedIntent  string    `db:"detected_intent" json:"detected_intent"`
	ServiceCategory string    `db:"service_category" json:"service_category"`
	Status          string    `db:"status" json:"status"`
	AIResponse      string    `db:"ai_response" json:"ai_response"`
	ConfidenceScore float64   `db:"confidence_score" json:"confidence_score"`
	ResolutionTime  *int      `db:"resolution_time" json:"resolution_time,omitempty"` // hours
	Resolved        bool      `db:"resolved" json:"resolved"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// QueryStatusCompleted is the only status the gateway ever writes;
// further transitions are driven externally.
const QueryStatusCompleted = "completed"

// HistoryItem is the history row shape returned to callers.
type HistoryItem struct {
	ID         int64  `json:"id"`
	Query      string `json:"query"`
	Date       string `json:"date"`
	Service    string `json:"service"`
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
}
