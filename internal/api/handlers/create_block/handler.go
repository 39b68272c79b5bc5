package create_block

import (
	"errors"
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	"github.com/kparturi/shop-backend/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time"
	msgShopClosed         = "shop is closed on the requested day"
	msgInvalidBlock       = "block must fall within opening hours"
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

// Handle POST /api/v1/admin/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocks - Failed to parse date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrShopClosed):
			h.logger.Warn("POST /admin/blocks - Shop closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocks - Invalid block: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /admin/blocks - Failed to create block: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks - Block created: block_id=%d, date=%s %s-%s",
		result.ID, result.Date, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
