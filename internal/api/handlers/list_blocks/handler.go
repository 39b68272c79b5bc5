package list_blocks

import (
	"errors"
	"net/http"
	"time"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/service/schedule"
	"github.com/kparturi/shop-backend/internal/service/schedule/models"
)

const (
	msgMissingDates = "startDate and endDate query parameters are required"
	msgInvalidDate  = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange = "endDate must not be before startDate"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/blocks
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /admin/blocks - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /admin/blocks - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /admin/blocks - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListBlocks(r.Context(), &models.ListBlocksRequest{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocks - Invalid range: %s..%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/blocks - Failed to list blocks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/blocks - Blocks retrieved: range=%s..%s, count=%d",
		startStr, endStr, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
