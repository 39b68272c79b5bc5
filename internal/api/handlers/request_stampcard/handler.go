package request_stampcard

import (
	"errors"
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	requestStampcard "github.com/kparturi/shop-backend/internal/usecase/request_stampcard"
)

const (
	msgInvalidRequestBody = "virheellinen pyyntö"
	msgInvalidName        = "nimi on liian lyhyt"
	msgInvalidEmail       = "virheellinen sähköpostiosoite"
	msgCardExists         = "sähköpostille on jo leimakortti"
	msgRequestPending     = "hakemus on jo käsittelyssä"
)

// RequestCardRequest HTTP request model.
type RequestCardRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RequestCardResponse HTTP response model.
type RequestCardResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type Handler struct {
	useCase RequestStampCardUseCase
	logger  Logger
}

func NewHandler(useCase RequestStampCardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stampcards/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestCardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stampcards/requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &requestStampcard.Request{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, requestStampcard.ErrCardExists):
			h.logger.Warn("POST /stampcards/requests - Card already exists")
			handlers.RespondError(w, http.StatusConflict, msgCardExists)

		case errors.Is(err, requestStampcard.ErrRequestPending):
			h.logger.Warn("POST /stampcards/requests - Request already pending")
			handlers.RespondError(w, http.StatusConflict, msgRequestPending)

		case errors.Is(err, requestStampcard.ErrInvalidName):
			h.logger.Warn("POST /stampcards/requests - Invalid name")
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, requestStampcard.ErrInvalidEmail):
			h.logger.Warn("POST /stampcards/requests - Invalid email")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, requestStampcard.ErrInvalidInput):
			h.logger.Warn("POST /stampcards/requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /stampcards/requests - Failed to record request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stampcards/requests - Request recorded: request_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, RequestCardResponse{ID: result.ID, Status: result.Status})
}
