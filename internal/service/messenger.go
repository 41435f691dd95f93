package service

import (
	"context"
	"log/slog"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

// simulatedMessenger stands in for SMS and push providers. Sends are logged,
// and pushes additionally land as in-app notification records so the portal
// shows them.
type simulatedMessenger struct {
	noteRepo repository.NotificationRepository
	log      *slog.Logger
}

func NewSimulatedMessenger(noteRepo repository.NotificationRepository) Messenger {
	return &simulatedMessenger{
		noteRepo: noteRepo,
		log:      logger.WithService("messenger"),
	}
}

func (m *simulatedMessenger) SendSMS(ctx context.Context, phone, message string) error {
	if phone == "" {
		m.log.Debug("Skipping SMS, no phone number on record")
		return nil
	}
	m.log.Info("Simulated SMS send", "to", phone, "message", message)
	return nil
}

func (m *simulatedMessenger) SendPush(ctx context.Context, userID int32, title, message string, attributes map[string]string) error {
	m.log.Info("Simulated push send", "user_id", userID, "title", title)
	note := &domain.Notification{
		UserID:     userID,
		Title:      title,
		Message:    message,
		Attributes: attributes,
	}
	return m.noteRepo.Create(ctx, note)
}
