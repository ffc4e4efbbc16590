// Package notifier posts newly registered complaints to a Telegram
// chat so the responsible department sees them without polling the
// dashboard.
package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"gramavoice/internal/config"
	"gramavoice/internal/models"
)

// Notifier sends complaint notifications. A nil *Notifier is a valid
// disabled notifier; all methods are nil-safe.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewNotifier creates a Telegram notifier, or returns (nil, nil) when
// notifications are disabled in the config.
func NewNotifier(cfg *config.Config, logger *zap.Logger) (*Notifier, error) {
	if !cfg.Notifications.Enabled || cfg.Notifications.TelegramBotToken == "" {
		logger.Info("Complaint notifications are disabled")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Notifications.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram notifier authorized", zap.String("username", botAPI.Self.UserName))

	return &Notifier{
		api:    botAPI,
		chatID: cfg.Notifications.TelegramChatID,
		logger: logger,
	}, nil
}

// ComplaintRegistered announces a new complaint. Delivery failures are
// logged and swallowed: notification is best-effort and must never fail
// the query pipeline.
func (n *Notifier) ComplaintRegistered(c *models.Complaint) {
	if n == nil {
		return
	}

	text := fmt.Sprintf("🔔 New complaint %s\nCategory: %s\nSeverity: %s\nLocation: %s\n\n%s",
		c.ComplaintID, c.Category, c.Severity, c.Location, c.Description)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.logger.Warn("Failed to send complaint notification",
			zap.String("complaint_id", c.ComplaintID),
			zap.Error(err))
		return
	}

	n.logger.Info("Complaint notification sent", zap.String("complaint_id", c.ComplaintID))
}
