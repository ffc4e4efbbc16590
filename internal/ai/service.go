// Package ai implements the demo stand-ins for the speech and language
// services: keyword-based intent detection, canned response lookup, and
// simulated speech-to-text / text-to-speech. Confidence scores are
// random noise for display, never a control signal.
package ai

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"gramavoice/internal/models"
)

// Confidence ranges observed by the demo services.
const (
	intentConfidenceMin = 0.80
	intentConfidenceMax = 0.95
	sttConfidenceMin    = 0.85
	sttConfidenceMax    = 0.98
)

// primaryLanguage is the first fallback when a category has no template
// for the requested language.
const primaryLanguage = "hi"

// Classification is the result of intent detection.
type Classification struct {
	Intent     models.Intent   `json:"intent"`
	Category   models.Category `json:"category"`
	Confidence float64         `json:"confidence"`
}

// Transcript is the result of (simulated) speech-to-text.
type Transcript struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

// Service bundles the classifier and responder. Classification and
// response lookup are pure; only the random source is shared state,
// guarded by a mutex so the service is safe for concurrent callers.
type Service struct {
	logger *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a Service seeded from the clock.
func NewService(logger *zap.Logger) *Service {
	return NewServiceWithSource(logger, rand.NewSource(time.Now().UnixNano()))
}

// NewServiceWithSource creates a Service with an explicit random
// source, so tests can pin confidence scores and complaint ids.
func NewServiceWithSource(logger *zap.Logger, src rand.Source) *Service {
	return &Service{
		logger: logger,
		rng:    rand.New(src),
	}
}

func (s *Service) uniform(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// DetectIntent classifies free text into a service category and intent.
// It walks the ordered keyword rules and returns on the first category
// whose vocabulary intersects the lowercased input; no match yields
// category=general, intent=information. The language tag is accepted
// for interface parity but does not alter matching. DetectIntent never
// fails: empty input is simply a no-match.
func (s *Service) DetectIntent(text, language string) Classification {
	lower := strings.ToLower(text)

	category := models.CategoryGeneral
	for _, rule := range keywordRules {
		if containsAny(lower, rule.keywords) {
			category = rule.category
			break
		}
	}

	result := Classification{
		Intent:     intentByCategory[category],
		Category:   category,
		Confidence: s.uniform(intentConfidenceMin, intentConfidenceMax),
	}

	s.logger.Info("Intent detected",
		zap.String("intent", string(result.Intent)),
		zap.String("category", string(result.Category)),
		zap.Float64("confidence", result.Confidence),
		zap.String("language", language),
	)

	return result
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// GenerateResponse returns the pre-authored reply for a category in the
// requested language, falling back requested → hi → en. An unknown
// category falls back to the general template set entirely.
func (s *Service) GenerateResponse(category models.Category, language string) string {
	templates, ok := responseTemplates[category]
	if !ok {
		templates = responseTemplates[models.CategoryGeneral]
	}

	text, ok := templates[language]
	if !ok {
		text, ok = templates[primaryLanguage]
		if !ok {
			text = templates["en"]
		}
	}

	s.logger.Info("Generated response",
		zap.String("category", string(category)),
		zap.String("language", language),
	)

	return text
}

// NewComplaintID builds a complaint reference like ELC-2024-1234: the
// first three letters of the category uppercased, the current year, and
// a random four-digit number. Ids are not deterministic and are never
// checked for uniqueness here; the complaints table's unique constraint
// is the backstop.
func (s *Service) NewComplaintID(category models.Category) string {
	prefix := string(category)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%d-%d", strings.ToUpper(prefix), time.Now().Year(), 1000+s.intn(9000))
}

// SpeechToText simulates transcription by picking one of the canned
// demo utterances. The audio payload is accepted and ignored.
func (s *Service) SpeechToText(audio []byte, language string) Transcript {
	text := demoTranscripts[s.intn(len(demoTranscripts))]
	t := Transcript{
		Text:       text,
		Confidence: s.uniform(sttConfidenceMin, sttConfidenceMax),
		Language:   language,
	}

	s.logger.Info("STT demo transcription",
		zap.String("text", t.Text),
		zap.Float64("confidence", t.Confidence),
		zap.Int("audio_bytes", len(audio)),
	)

	return t
}

// TextToSpeech simulates synthesis and returns a placeholder audio URL.
func (s *Service) TextToSpeech(text, language string) string {
	s.logger.Info("TTS demo synthesis",
		zap.Int("text_len", len(text)),
		zap.String("language", language),
	)
	return "demo_audio.mp3"
}
