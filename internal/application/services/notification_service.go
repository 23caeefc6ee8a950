package services

import (
	"context"
	"fmt"

	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/logger"
	"github.com/coatdesk/core/internal/ports"
)

// NotificationService formats appointment messages and forwards them to the
// external SMS provider.
type NotificationService struct {
	sender       ports.SMSSender
	configs      ports.ProviderConfigRepository
	contactPhone string
	logger       *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(sender ports.SMSSender, configs ports.ProviderConfigRepository, contactPhone string, logger *logger.Logger) *NotificationService {
	return &NotificationService{
		sender:       sender,
		configs:      configs,
		contactPhone: contactPhone,
		logger:       logger,
	}
}

// SendSMS validates the request and delegates delivery to the provider.
// Returns the provider message ID. Validation problems surface as
// entities.ErrMissingRecipient or entities.ErrIncompleteConfig so callers
// can map them to client errors.
func (s *NotificationService) SendSMS(ctx context.Context, phoneNumber, message string, cfg entities.TwilioConfig) (string, error) {
	if phoneNumber == "" || message == "" {
		return "", entities.ErrMissingRecipient
	}
	if !cfg.IsComplete() {
		return "", entities.ErrIncompleteConfig
	}

	messageID, err := s.sender.Send(ctx, cfg, phoneNumber, message)
	s.logger.LogNotification(phoneNumber, messageID, err)
	if err != nil {
		return "", fmt.Errorf("send sms: %w", err)
	}
	return messageID, nil
}

// SendAppointmentSMS sends a message about an appointment using the stored
// provider configuration.
func (s *NotificationService) SendAppointmentSMS(ctx context.Context, phoneNumber, message string) (string, error) {
	cfg, err := s.configs.LoadConfig(ctx)
	if err != nil {
		return "", err
	}
	return s.SendSMS(ctx, phoneNumber, message, *cfg)
}

// ReminderMessage builds the reminder text for an appointment.
func (s *NotificationService) ReminderMessage(appt entities.Appointment) string {
	return fmt.Sprintf("Reminder: you have a %s appointment on %s at %s. Contact: %s",
		appt.Service, appt.Date, appt.Time, s.contactPhone)
}

// ConfirmationMessage builds the confirmation text for an appointment.
func (s *NotificationService) ConfirmationMessage(appt entities.Appointment) string {
	return fmt.Sprintf("Your %s appointment on %s at %s is confirmed. Thank you!",
		appt.Service, appt.Date, appt.Time)
}

// CancellationMessage builds the cancellation text for an appointment.
func (s *NotificationService) CancellationMessage(appt entities.Appointment) string {
	return fmt.Sprintf("Your %s appointment on %s at %s has been cancelled. Call %s to reschedule.",
		appt.Service, appt.Date, appt.Time, s.contactPhone)
}
