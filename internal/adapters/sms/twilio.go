// Package sms contains the outbound SMS provider adapter.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/logger"
	"github.com/coatdesk/core/internal/ports"
)

const defaultBaseURL = "https://api.twilio.com"

// TwilioSender delivers messages through the Twilio REST API.
type TwilioSender struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewTwilioSender creates a Twilio-backed sender. baseURL may be empty to
// use the public API host.
func NewTwilioSender(baseURL string, logger *logger.Logger) ports.SMSSender {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &TwilioSender{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

type twilioResponse struct {
	SID     string `json:"sid"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Send posts the message to the account's Messages resource and returns the
// provider-assigned SID.
func (t *TwilioSender) Send(ctx context.Context, cfg entities.TwilioConfig, to, body string) (string, error) {
	if !cfg.IsComplete() {
		return "", entities.ErrIncompleteConfig
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, url.PathEscape(cfg.AccountSID))

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", cfg.PhoneNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build provider request: %w", err)
	}
	req.SetBasicAuth(cfg.AccountSID, cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	var parsed twilioResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		parsed = twilioResponse{Message: strings.TrimSpace(string(payload))}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.logger.Warnw("Provider rejected message", "status", resp.StatusCode, "code", parsed.Code, "message", parsed.Message)
		return "", fmt.Errorf("provider error (status %d): %s", resp.StatusCode, parsed.Message)
	}

	return parsed.SID, nil
}
