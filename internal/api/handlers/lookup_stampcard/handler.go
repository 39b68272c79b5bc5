package lookup_stampcard

import (
	"errors"
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	lookupStampcard "github.com/kparturi/shop-backend/internal/usecase/lookup_stampcard"
)

const (
	msgInvalidRequestBody = "virheellinen pyyntö"
	msgCardNotFound       = "leimakorttia ei löytynyt"
	msgNoEmailOnCard      = "korttiin ei ole liitetty sähköpostia, ota yhteyttä liikkeeseen"
)

type Handler struct {
	useCase LookupStampCardUseCase
	logger  Logger
}

func NewHandler(useCase LookupStampCardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stampcards/lookup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stampcards/lookup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &lookupStampcard.Request{
		ClientID:   req.ClientID,
		Identifier: req.Identifier,
	})
	if err != nil {
		switch {
		case errors.Is(err, lookupStampcard.ErrCardNotFound):
			h.logger.Warn("POST /stampcards/lookup - Card not found")
			handlers.RespondNotFound(w, msgCardNotFound)

		case errors.Is(err, lookupStampcard.ErrNoEmailOnCard):
			h.logger.Warn("POST /stampcards/lookup - Card has no email on file")
			handlers.RespondError(w, http.StatusConflict, msgNoEmailOnCard)

		case errors.Is(err, lookupStampcard.ErrInvalidInput):
			h.logger.Warn("POST /stampcards/lookup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /stampcards/lookup - Failed to look up card: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stampcards/lookup - Lookup done: verification_required=%t", result.VerificationRequired)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
