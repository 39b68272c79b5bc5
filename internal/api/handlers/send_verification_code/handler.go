package send_verification_code

import (
	"errors"
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	sendVerificationCode "github.com/kparturi/shop-backend/internal/usecase/send_verification_code"
)

const (
	msgInvalidRequestBody = "virheellinen pyyntö"
	msgCardNotFound       = "leimakorttia ei löytynyt"
)

// SendCodeRequest HTTP request model.
type SendCodeRequest struct {
	Email string `json:"email"`
}

// SendCodeResponse HTTP response model.
type SendCodeResponse struct {
	ExpiresInSeconds int `json:"expiresInSeconds"`
}

type Handler struct {
	useCase SendVerificationCodeUseCase
	logger  Logger
}

func NewHandler(useCase SendVerificationCodeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stampcards/verification-codes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stampcards/verification-codes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sendVerificationCode.Request{Email: req.Email})
	if err != nil {
		switch {
		case errors.Is(err, sendVerificationCode.ErrCardNotFound):
			h.logger.Warn("POST /stampcards/verification-codes - Card not found")
			handlers.RespondNotFound(w, msgCardNotFound)

		case errors.Is(err, sendVerificationCode.ErrInvalidInput):
			h.logger.Warn("POST /stampcards/verification-codes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /stampcards/verification-codes - Failed to issue code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stampcards/verification-codes - Code issued, expires_in=%ds", result.ExpiresInSeconds)
	handlers.RespondJSON(w, http.StatusOK, SendCodeResponse{ExpiresInSeconds: result.ExpiresInSeconds})
}
