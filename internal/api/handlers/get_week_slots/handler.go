package get_week_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	getWeekSlots "github.com/kparturi/shop-backend/internal/usecase/get_week_slots"
)

const (
	msgMissingDate        = "päivämäärä puuttuu"
	msgInvalidDate        = "virheellinen päivämäärä, odotettu muoto VVVV-KK-PP"
	msgMissingServiceID   = "palvelun tunniste puuttuu"
	msgInvalidServiceID   = "virheellinen palvelun tunniste"
	msgInvalidAddOnIDs    = "virheelliset lisäpalvelun tunnisteet"
	msgServiceNotFound    = "palvelua ei löytynyt"
	msgServiceNotBookable = "palvelua ei voi varata itsenäisesti"
	msgAddOnNotAllowed    = "lisäpalvelu ei sovi valittuun palveluun"
	msgInvalidSelection   = "virheellinen palveluvalinta"
)

type Handler struct {
	useCase GetWeekSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, any day of the target week, YYYY-MM-DD),
// serviceId (required), addOnIds (optional, comma separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	addOnIDs, err := parseAddOnIDs(query.Get("addOnIds"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid add-on IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddOnIDs)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, serviceID, addOnIDs)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getWeekSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getWeekSlots.ErrServiceNotBookable):
			h.logger.Warn("GET /slots - Service not bookable on its own: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgServiceNotBookable)

		case errors.Is(err, getWeekSlots.ErrAddOnNotAllowed):
			h.logger.Warn("GET /slots - Add-on not allowed: service_id=%d, add_on_ids=%v", serviceID, addOnIDs)
			handlers.RespondBadRequest(w, msgAddOnNotAllowed)

		case errors.Is(err, getWeekSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid selection: service_id=%d, add_on_ids=%v", serviceID, addOnIDs)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("GET /slots - Failed to get slots: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: service_id=%d, week_start=%s",
		serviceID, result.WeekStart.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func parseAddOnIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
