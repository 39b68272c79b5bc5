package list_bookings

import (
	"net/http"
	"time"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/service/bookings/models"
)

const (
	msgMissingDate = "date query parameter is required"
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: date (required, YYYY-MM-DD), includeInactive (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.ListByDate(r.Context(), &models.ListByDateRequest{
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: date=%s, count=%d", dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
