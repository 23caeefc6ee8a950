package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coatdesk/core/internal/application/services"
	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/logger"
	"github.com/coatdesk/core/internal/ports"
)

// ConfigResponse carries the stored provider configuration.
type ConfigResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Config  *entities.TwilioConfig `json:"config,omitempty"`
}

// SendSMSResponse reports a delivery attempt.
type SendSMSResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
}

// SendSMSRequest is the POST /api/send-sms body.
type SendSMSRequest struct {
	PhoneNumber string                `json:"phoneNumber" validate:"required"`
	Message     string                `json:"message" validate:"required"`
	Config      entities.TwilioConfig `json:"config"`
}

// SaveConfigRequest is the POST /api/save-twilio-config body.
type SaveConfigRequest struct {
	Config entities.TwilioConfig `json:"config"`
}

// NotificationHandler serves the SMS and provider configuration endpoints.
type NotificationHandler struct {
	notifications *services.NotificationService
	configs       ports.ProviderConfigRepository
	logger        *logger.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notifications *services.NotificationService, configs ports.ProviderConfigRepository, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		configs:       configs,
		logger:        logger,
	}
}

// GetConfig serves GET /api/get-twilio-config.
func (h *NotificationHandler) GetConfig(c echo.Context) error {
	cfg, err := h.configs.LoadConfig(c.Request().Context())
	if errors.Is(err, entities.ErrConfigNotFound) {
		return c.JSON(http.StatusNotFound, StatusResponse{
			Success: false,
			Message: "no twilio configuration found",
		})
	}
	if err != nil {
		h.logger.Error("Load twilio config failed", "error", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "failed to retrieve twilio configuration",
		})
	}

	return c.JSON(http.StatusOK, ConfigResponse{
		Success: true,
		Message: "twilio configuration retrieved successfully",
		Config:  cfg,
	})
}

// SaveConfig serves POST /api/save-twilio-config. All three credential
// fields must be present.
func (h *NotificationHandler) SaveConfig(c echo.Context) error {
	var req SaveConfigRequest
	if err := c.Bind(&req); err != nil || !req.Config.IsComplete() {
		return c.JSON(http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "twilio configuration is incomplete",
		})
	}

	if err := h.configs.SaveConfig(c.Request().Context(), req.Config); err != nil {
		h.logger.Error("Save twilio config failed", "error", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "failed to save twilio configuration",
		})
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Message: "twilio configuration saved successfully",
	})
}

// ClearConfig serves POST /api/clear-twilio-config. Clearing an absent
// configuration still succeeds.
func (h *NotificationHandler) ClearConfig(c echo.Context) error {
	if err := h.configs.ClearConfig(c.Request().Context()); err != nil {
		h.logger.Error("Clear twilio config failed", "error", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "failed to clear twilio configuration",
		})
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Message: "twilio configuration cleared successfully",
	})
}

// SendSMS serves POST /api/send-sms.
func (h *NotificationHandler) SendSMS(c echo.Context) error {
	var req SendSMSRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "phone number and message are required",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "phone number and message are required",
		})
	}
	if !req.Config.IsComplete() {
		return c.JSON(http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "twilio configuration is missing, add the credentials in settings",
		})
	}

	messageID, err := h.notifications.SendSMS(c.Request().Context(), req.PhoneNumber, req.Message, req.Config)
	if err != nil {
		h.logger.Error("Send SMS failed", "error", err)
		return c.JSON(http.StatusInternalServerError, SendSMSResponse{
			Success: false,
			Message: "failed to send SMS: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, SendSMSResponse{
		Success:   true,
		Message:   "SMS message sent successfully",
		MessageID: messageID,
	})
}
