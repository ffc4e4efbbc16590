package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// SeedDemoData inserts the demo user, three processed queries and two
// complaints for showcasing the dashboard. It is a no-op once any
// query row exists.
func SeedDemoData(db *sqlx.DB, logger *zap.Logger) error {
	var count int
	if err := db.Get(&count, `SELECT COUNT(id) FROM queries`); err != nil {
		return storageErr("seed demo data", err)
	}
	if count > 0 {
		logger.Info("Demo data already exists")
		return nil
	}

	logger.Info("Seeding demo data...")

	tx, err := db.Beginx()
	if err != nil {
		return storageErr("seed demo data", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO users (user_id, name, phone, village, district, state, preferred_language)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		"demo_user_001", "राज कुमार", "+91-9876543210", "रामपुर", "वाराणसी", "उत्तर प्रदेश", "hi")
	if err != nil {
		return storageErr("seed demo data", err)
	}

	demoQueries := []struct {
		text       string
		intent     string
		category   string
		response   string
		confidence float64
		resolved   bool
	}{
		{"मेरी पेंशन कब आएगी?", "check_status", "pension", "आपकी पेंशन इस महीने की 5 तारीख को आ गई है।", 0.92, true},
		{"राशन कार्ड की जानकारी चाहिए", "information", "ration", "आपका राशन कार्ड सक्रिय है।", 0.89, true},
		{"हमारे गाँव में बिजली नहीं है", "complaint", "electricity", "आपकी शिकायत दर्ज कर ली गई है।", 0.95, false},
	}
	for _, q := range demoQueries {
		_, err = tx.Exec(`INSERT INTO queries (user_id, query_text, language, detected_intent, service_category, status, ai_response, confidence_score, resolved)
		                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			"demo_user_001", q.text, "hi", q.intent, q.category, "completed", q.response, q.confidence, q.resolved)
		if err != nil {
			return storageErr("seed demo data", err)
		}
	}

	demoComplaints := []struct {
		complaintID string
		category    string
		description string
		severity    string
		status      string
	}{
		{"ELC-2024-001", "electricity", "गाँव में 2 दिन से बिजली नहीं है", "high", "in_progress"},
		{"WTR-2024-002", "water", "पानी की सप्लाई बंद है", "medium", "open"},
	}
	for _, c := range demoComplaints {
		_, err = tx.Exec(`INSERT INTO complaints (complaint_id, user_id, category, description, location, severity, status)
		                  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.complaintID, "demo_user_001", c.category, c.description, "रामपुर, वाराणसी", c.severity, c.status)
		if err != nil {
			return storageErr("seed demo data", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("seed demo data", err)
	}

	logger.Info("Demo data seeded successfully")
	return nil
}
