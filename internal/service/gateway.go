// Package service holds the gateway pipeline that ties intent
// detection, response generation and the interaction ledger together.
package service

import (
	"math"
	"time"

	"go.uber.org/zap"

	"gramavoice/internal/ai"
	"gramavoice/internal/metrics"
	"gramavoice/internal/models"
	"gramavoice/internal/notifier"
	"gramavoice/internal/repository"
)

const defaultHistoryLimit = 50

// defaultComplaintLocation stands in for real geolocation, which the
// demo never collects.
const defaultComplaintLocation = "Demo Location"

// Gateway processes citizen queries end to end: classify, respond,
// persist, and register complaints when the intent calls for one.
type Gateway struct {
	ai            *ai.Service
	queryRepo     repository.QueryRepository
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	notifier      *notifier.Notifier
	logger        *zap.Logger
}

func NewGateway(
	aiService *ai.Service,
	queryRepo repository.QueryRepository,
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
	n *notifier.Notifier,
	logger *zap.Logger,
) *Gateway {
	return &Gateway{
		ai:            aiService,
		queryRepo:     queryRepo,
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		notifier:      n,
		logger:        logger,
	}
}

// ProcessResult is what the HTTP layer renders back to the caller.
type ProcessResult struct {
	QueryID          int64   `json:"query_id"`
	QueryText        string  `json:"query_text"`
	DetectedIntent   string  `json:"detected_intent"`
	ServiceCategory  string  `json:"service_category"`
	Confidence       float64 `json:"confidence"`
	AIResponse       string  `json:"ai_response"`
	ComplaintID      *string `json:"complaint_id,omitempty"`
	AudioResponseURL string  `json:"audio_response_url,omitempty"`
}

// ProcessQuery runs the text pipeline: detect intent, generate the
// response, persist the interaction, and create a complaint record when
// the detected intent is a complaint. Storage failures are returned to
// the caller untouched; there are no retries. The complaint write is
// not transactional with the query write, so a failure there can leave
// a recorded query without its complaint.
func (g *Gateway) ProcessQuery(text, language, userID string) (*ProcessResult, error) {
	return g.process(text, language, userID, nil)
}

// ProcessVoiceInput runs the same pipeline on a (simulated) voice
// transcription. The stored confidence is the mean of the transcription
// and intent confidences, and the result carries a placeholder audio
// response URL.
func (g *Gateway) ProcessVoiceInput(audio []byte, language, userID string) (*ProcessResult, error) {
	transcript := g.ai.SpeechToText(audio, language)

	result, err := g.process(transcript.Text, language, userID, &transcript.Confidence)
	if err != nil {
		return nil, err
	}

	result.AudioResponseURL = g.ai.TextToSpeech(result.AIResponse, language)
	return result, nil
}

func (g *Gateway) process(text, language, userID string, sttConfidence *float64) (*ProcessResult, error) {
	classification := g.ai.DetectIntent(text, language)
	responseText := g.ai.GenerateResponse(classification.Category, language)

	confidence := classification.Confidence
	if sttConfidence != nil {
		confidence = (*sttConfidence + classification.Confidence) / 2
	}

	query := &models.Query{
		UserID:          userID,
		QueryText:       text,
		Language:        language,
		DetectedIntent:  string(classification.Intent),
		ServiceCategory: string(classification.Category),
		Status:          models.QueryStatusCompleted,
		AIResponse:      responseText,
		ConfidenceScore: confidence,
	}
	if err := g.queryRepo.SaveQuery(query); err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	result := &ProcessResult{
		QueryID:         query.ID,
		QueryText:       text,
		DetectedIntent:  string(classification.Intent),
		ServiceCategory: string(classification.Category),
		Confidence:      confidence,
		AIResponse:      responseText,
	}

	if classification.Intent == models.IntentComplaint {
		complaint := &models.Complaint{
			ComplaintID: g.ai.NewComplaintID(classification.Category),
			UserID:      userID,
			Category:    string(classification.Category),
			Description: text,
			Location:    defaultComplaintLocation,
			Severity:    models.SeverityMedium,
			Status:      models.ComplaintStatusOpen,
		}
		if err := g.complaintRepo.SaveComplaint(complaint); err != nil {
			// The query row is already committed at this point.
			metrics.RecordStorageFailure()
			return nil, err
		}
		result.ComplaintID = &complaint.ComplaintID

		g.notifier.ComplaintRegistered(complaint)
		metrics.RecordComplaint(complaint.Category)
	}

	// Profile bookkeeping is best-effort; a missing or unreachable
	// profile must not fail an already recorded interaction.
	if err := g.userRepo.TouchLastInteraction(userID); err != nil {
		g.logger.Warn("Failed to update user last interaction",
			zap.String("user_id", userID),
			zap.Error(err))
	}

	metrics.RecordQuery(string(classification.Category), string(classification.Intent))

	g.logger.Info("Query processed",
		zap.Int64("query_id", query.ID),
		zap.String("user_id", userID),
		zap.String("category", result.ServiceCategory),
		zap.String("intent", result.DetectedIntent),
	)

	return result, nil
}

// History returns the user's interactions, newest first, capped at
// limit (default 50). An unknown user simply gets an empty slice.
func (g *Gateway) History(userID string, limit int) ([]models.HistoryItem, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	queries, err := g.queryRepo.GetUserHistory(userID, limit)
	if err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	items := make([]models.HistoryItem, 0, len(queries))
	for _, q := range queries {
		resolution := "Pending"
		if q.Resolved {
			resolution = "Resolved"
		}
		items = append(items, models.HistoryItem{
			ID:         q.ID,
			Query:      q.QueryText,
			Date:       q.CreatedAt.Format("2006-01-02 15:04"),
			Service:    q.ServiceCategory,
			Status:     q.Status,
			Resolution: resolution,
		})
	}
	return items, nil
}

// SetQueryResolved flips the externally driven resolved flag on an
// interaction. Nothing in the pipeline itself ever resolves a query.
func (g *Gateway) SetQueryResolved(id int64, resolved bool) error {
	if err := g.queryRepo.SetResolved(id, resolved); err != nil {
		metrics.RecordStorageFailure()
		return err
	}
	return nil
}

// DashboardData aggregates activity over a trailing window. Categories
// and days with no activity are omitted, not zero-filled.
type DashboardData struct {
	TotalQueries         int                        `json:"total_queries"`
	TotalComplaints      int                        `json:"total_complaints"`
	ResolvedComplaints   int                        `json:"resolved_complaints"`
	ResolutionRate       float64                    `json:"resolution_rate"`
	ComplaintsByCategory []repository.CategoryCount `json:"complaints_by_category"`
	QueriesByService     []repository.ServiceCount  `json:"queries_by_service"`
	DailyTrend           []repository.DailyCount    `json:"daily_trend"`
}

// Dashboard collects the analytics shown on the UI dashboard for the
// last N days (default 7).
func (g *Gateway) Dashboard(days int) (*DashboardData, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	totalQueries, err := g.queryRepo.CountSince(since)
	if err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	totalComplaints, err := g.complaintRepo.CountSince(since)
	if err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	resolvedComplaints, err := g.complaintRepo.CountResolvedSince(since)
	if err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	complaintsByCategory, err := g.complaintRepo.CountByCategorySince(since)
	if err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	queriesByService, err := g.queryRepo.CountByServiceSince(since)
	if err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	dailyTrend, err := g.queryRepo.DailyCountsSince(since)
	if err != nil {
		metrics.RecordStorageFailure()
		return nil, err
	}

	resolutionRate := 0.0
	if totalComplaints > 0 {
		resolutionRate = float64(resolvedComplaints) / float64(totalComplaints) * 100
	}

	return &DashboardData{
		TotalQueries:         totalQueries,
		TotalComplaints:      totalComplaints,
		ResolvedComplaints:   resolvedComplaints,
		ResolutionRate:       math.Round(resolutionRate*100) / 100,
		ComplaintsByCategory: complaintsByCategory,
		QueriesByService:     queriesByService,
		DailyTrend:           dailyTrend,
	}, nil
}
