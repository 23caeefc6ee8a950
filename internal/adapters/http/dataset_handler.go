package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/coatdesk/core/internal/application/services"
	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/logger"
)

// StatusResponse is the bare success/message envelope every endpoint uses.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DatasetResponse carries a dataset along with the envelope.
type DatasetResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type savePayload struct {
	Data json.RawMessage `json:"data"`
}

// DatasetHandler serves the per-kind dataset endpoints and bulk
// initialization.
type DatasetHandler struct {
	datasets *services.DatasetService
	ops      *prometheus.CounterVec
	logger   *logger.Logger
}

// NewDatasetHandler creates a new dataset handler. ops may be nil when
// metrics are disabled.
func NewDatasetHandler(datasets *services.DatasetService, ops *prometheus.CounterVec, logger *logger.Logger) *DatasetHandler {
	return &DatasetHandler{
		datasets: datasets,
		ops:      ops,
		logger:   logger,
	}
}

// Get returns the handler serving GET /api/<kind>. A missing backing file
// is created with seed content before the response is built.
func (h *DatasetHandler) Get(kind entities.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := h.datasets.Load(c.Request().Context(), kind)
		if err != nil {
			h.count(kind, "load", "error")
			h.logger.Error("Load dataset failed", "kind", kind, "error", err)
			return c.JSON(http.StatusInternalServerError, StatusResponse{
				Success: false,
				Message: fmt.Sprintf("failed to retrieve %s", kind.DisplayName()),
			})
		}

		h.count(kind, "load", "ok")
		return c.JSON(http.StatusOK, DatasetResponse{
			Success: true,
			Message: fmt.Sprintf("%s retrieved successfully", kind.DisplayName()),
			Data:    data,
		})
	}
}

// Save returns the handler serving POST /api/<kind>. The body must carry a
// JSON array under "data"; the persisted file is fully overwritten, no
// merge and no concurrency check.
func (h *DatasetHandler) Save(kind entities.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload savePayload
		if err := c.Bind(&payload); err != nil {
			h.count(kind, "save", "invalid")
			return c.JSON(http.StatusBadRequest, StatusResponse{
				Success: false,
				Message: fmt.Sprintf("invalid %s data", kind.DisplayName()),
			})
		}

		err := h.datasets.Save(c.Request().Context(), kind, payload.Data)
		if errors.Is(err, entities.ErrInvalidDataset) {
			h.count(kind, "save", "invalid")
			return c.JSON(http.StatusBadRequest, StatusResponse{
				Success: false,
				Message: fmt.Sprintf("invalid %s data", kind.DisplayName()),
			})
		}
		if err != nil {
			h.count(kind, "save", "error")
			h.logger.Error("Save dataset failed", "kind", kind, "error", err)
			return c.JSON(http.StatusInternalServerError, StatusResponse{
				Success: false,
				Message: fmt.Sprintf("failed to save %s", kind.DisplayName()),
			})
		}

		h.count(kind, "save", "ok")
		return c.JSON(http.StatusOK, StatusResponse{
			Success: true,
			Message: fmt.Sprintf("%s saved successfully", kind.DisplayName()),
		})
	}
}

// Initialize serves POST /api/initialize-data. Idempotent: files that exist
// already are untouched.
func (h *DatasetHandler) Initialize(c echo.Context) error {
	created, err := h.datasets.Initialize(c.Request().Context())
	if err != nil {
		h.logger.Error("Initialize data failed", "error", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "failed to initialize data files",
		})
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("all data files initialized successfully (%d created)", len(created)),
	})
}

func (h *DatasetHandler) count(kind entities.Kind, op, outcome string) {
	if h.ops != nil {
		h.ops.WithLabelValues(string(kind), op, outcome).Inc()
	}
}
