// Package client is the in-process gateway to the dataset API. Loads fall
// back to seed data on any failure so consumers always have a collection to
// render; saves report a plain boolean and are never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/domain/seed"
	"github.com/coatdesk/core/internal/infrastructure/logger"
)

// Client talks to a running dataset API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a gateway client for the given server base URL.
func New(baseURL string, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type datasetEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type statusEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

type configEnvelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Config  *entities.TwilioConfig `json:"config"`
}

// loadDataset fetches one collection, falling back to the given default on
// any transport failure, non-2xx status or missing data field.
func loadDataset[T any](ctx context.Context, c *Client, kind entities.Kind, fallback []T) []T {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(kind.Slug()), nil)
	if err != nil {
		return fallback
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("Dataset fetch failed, using seed data", "kind", kind, "error", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("Dataset fetch failed, using seed data", "kind", kind, "status", resp.StatusCode)
		return fallback
	}

	var envelope datasetEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Data == nil {
		c.logger.Warnw("Dataset response unreadable, using seed data", "kind", kind)
		return fallback
	}

	var items []T
	if err := json.Unmarshal(envelope.Data, &items); err != nil {
		c.logger.Warnw("Dataset payload malformed, using seed data", "kind", kind, "error", err)
		return fallback
	}
	return items
}

// saveDataset posts the full collection. False means the save did not
// happen; the caller decides whether to surface that.
func saveDataset[T any](ctx context.Context, c *Client, kind entities.Kind, items []T) bool {
	payload, err := json.Marshal(map[string]any{"data": items})
	if err != nil {
		c.logger.Errorw("Dataset save failed", "kind", kind, "error", err)
		return false
	}

	ok, _ := c.post(ctx, kind.Slug(), payload)
	if !ok {
		c.logger.Errorw("Dataset save failed", "kind", kind)
	}
	return ok
}

// LoadCustomers fetches the customer collection.
func (c *Client) LoadCustomers(ctx context.Context) []entities.Customer {
	return loadDataset(ctx, c, entities.KindCustomers, seed.Customers())
}

// SaveCustomers persists the full customer collection.
func (c *Client) SaveCustomers(ctx context.Context, items []entities.Customer) bool {
	return saveDataset(ctx, c, entities.KindCustomers, items)
}

// LoadStaff fetches the staff collection.
func (c *Client) LoadStaff(ctx context.Context) []entities.Staff {
	return loadDataset(ctx, c, entities.KindStaff, seed.Staff())
}

// SaveStaff persists the full staff collection.
func (c *Client) SaveStaff(ctx context.Context, items []entities.Staff) bool {
	return saveDataset(ctx, c, entities.KindStaff, items)
}

// LoadServices fetches the service catalog.
func (c *Client) LoadServices(ctx context.Context) []entities.Service {
	return loadDataset(ctx, c, entities.KindServices, seed.Services())
}

// SaveServices persists the full service catalog.
func (c *Client) SaveServices(ctx context.Context, items []entities.Service) bool {
	return saveDataset(ctx, c, entities.KindServices, items)
}

// LoadProducts fetches the product catalog.
func (c *Client) LoadProducts(ctx context.Context) []entities.Product {
	return loadDataset(ctx, c, entities.KindProducts, seed.Products())
}

// SaveProducts persists the full product catalog.
func (c *Client) SaveProducts(ctx context.Context, items []entities.Product) bool {
	return saveDataset(ctx, c, entities.KindProducts, items)
}

// LoadAppointments fetches the appointment collection.
func (c *Client) LoadAppointments(ctx context.Context) []entities.Appointment {
	return loadDataset(ctx, c, entities.KindAppointments, seed.Appointments())
}

// SaveAppointments persists the full appointment collection.
func (c *Client) SaveAppointments(ctx context.Context, items []entities.Appointment) bool {
	return saveDataset(ctx, c, entities.KindAppointments, items)
}

// LoadSales fetches the sale collection.
func (c *Client) LoadSales(ctx context.Context) []entities.Sale {
	return loadDataset(ctx, c, entities.KindSales, seed.Sales())
}

// SaveSales persists the full sale collection.
func (c *Client) SaveSales(ctx context.Context, items []entities.Sale) bool {
	return saveDataset(ctx, c, entities.KindSales, items)
}

// LoadSalesSeries fetches the monthly sales chart series.
func (c *Client) LoadSalesSeries(ctx context.Context) []entities.SalesPoint {
	return loadDataset(ctx, c, entities.KindSalesData, seed.MonthlySales())
}

// SaveSalesSeries persists the monthly sales chart series.
func (c *Client) SaveSalesSeries(ctx context.Context, points []entities.SalesPoint) bool {
	return saveDataset(ctx, c, entities.KindSalesData, points)
}

// LoadAppointmentsSeries fetches the weekly appointments chart series.
func (c *Client) LoadAppointmentsSeries(ctx context.Context) []entities.AppointmentsPoint {
	return loadDataset(ctx, c, entities.KindAppointmentsData, seed.WeeklyAppointments())
}

// SaveAppointmentsSeries persists the weekly appointments chart series.
func (c *Client) SaveAppointmentsSeries(ctx context.Context, points []entities.AppointmentsPoint) bool {
	return saveDataset(ctx, c, entities.KindAppointmentsData, points)
}

// InitializeData asks the server to create any missing backing files.
func (c *Client) InitializeData(ctx context.Context) bool {
	ok, _ := c.post(ctx, "initialize-data", nil)
	return ok
}

// LoadTwilioConfig returns the stored provider credentials, or nil when
// unset or unreachable.
func (c *Client) LoadTwilioConfig(ctx context.Context) *entities.TwilioConfig {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("get-twilio-config"), nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("Twilio config fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var envelope configEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil
	}
	return envelope.Config
}

// SaveTwilioConfig stores the provider credentials.
func (c *Client) SaveTwilioConfig(ctx context.Context, cfg entities.TwilioConfig) bool {
	payload, err := json.Marshal(map[string]any{"config": cfg})
	if err != nil {
		return false
	}
	ok, _ := c.post(ctx, "save-twilio-config", payload)
	return ok
}

// ClearTwilioConfig removes the stored provider credentials.
func (c *Client) ClearTwilioConfig(ctx context.Context) bool {
	ok, _ := c.post(ctx, "clear-twilio-config", nil)
	return ok
}

// SendResult reports an SMS delivery attempt made through the server.
type SendResult struct {
	Success   bool
	Message   string
	MessageID string
}

// SendSMS delivers a message through the server's send endpoint.
func (c *Client) SendSMS(ctx context.Context, phoneNumber, message string, cfg entities.TwilioConfig) SendResult {
	payload, err := json.Marshal(map[string]any{
		"phoneNumber": phoneNumber,
		"message":     message,
		"config":      cfg,
	})
	if err != nil {
		return SendResult{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("send-sms"), bytes.NewReader(payload))
	if err != nil {
		return SendResult{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SendResult{Message: "failed to reach the server: " + err.Error()}
	}
	defer resp.Body.Close()

	var envelope statusEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return SendResult{Message: "unreadable server response"}
	}
	return SendResult{Success: envelope.Success, Message: envelope.Message, MessageID: envelope.MessageID}
}

func (c *Client) post(ctx context.Context, slug string, payload []byte) (bool, string) {
	var body *bytes.Reader
	if payload == nil {
		body = bytes.NewReader(nil)
	} else {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(slug), body)
	if err != nil {
		return false, err.Error()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err.Error()
	}
	defer resp.Body.Close()

	var envelope statusEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, "unreadable server response"
	}
	if resp.StatusCode != http.StatusOK || !envelope.Success {
		return false, envelope.Message
	}
	return true, envelope.Message
}

func (c *Client) endpoint(slug string) string {
	return fmt.Sprintf("%s/api/%s", c.baseURL, slug)
}
