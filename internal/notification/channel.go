// File: internal/notification/channel.go
package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Channel delivers intents to their recipient.
type Channel interface {
	Deliver(ctx context.Context, intent Intent) error
}

// ErrNoRecipient is returned for intents without a recipient.
var ErrNoRecipient = errors.New("intent has no recipient")

// LogChannel records intents in the application log and delivers nothing.
// Emails are never logged.
type LogChannel struct {
	logger *zap.Logger
}

var _ Channel = (*LogChannel)(nil)

// NewLogChannel creates a LogChannel.
func NewLogChannel(logger *zap.Logger) *LogChannel {
	return &LogChannel{logger: logger.Named("NotificationChannel")}
}

// Deliver logs the intent.
func (l *LogChannel) Deliver(_ context.Context, intent Intent) error {
	if intent.To.UserID == uuid.Nil {
		return ErrNoRecipient
	}
	l.logger.Info("Member intent recorded",
		zap.String("kind", string(intent.Kind)),
		zap.String("fromUserID", intent.From.UserID.String()),
		zap.String("toUserID", intent.To.UserID.String()),
		zap.String("topic", intent.Topic),
		zap.Int("messageLength", len(intent.Message)),
		zap.Time("at", intent.At),
	)
	return nil
}
