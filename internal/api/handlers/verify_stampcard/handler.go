package verify_stampcard

import (
	"errors"
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	verifyStampcard "github.com/kparturi/shop-backend/internal/usecase/verify_stampcard"
)

const (
	msgInvalidRequestBody = "virheellinen pyyntö"
	msgCodeInvalid        = "virheellinen vahvistuskoodi"
	msgCodeExpired        = "vahvistuskoodi on vanhentunut, pyydä uusi"
	msgCardNotFound       = "leimakorttia ei löytynyt"
)

// VerifyRequest HTTP request model.
type VerifyRequest struct {
	ClientID string `json:"clientId"`
	Email    string `json:"email"`
	Code     string `json:"code"`
}

// CardResponse HTTP model for a stamp card.
type CardResponse struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name,omitempty"`
	ReferralCode  string  `json:"referralCode"`
	StampCount    int     `json:"stampCount"`
	ReferralCount int     `json:"referralCount"`
	MaxStamps     int     `json:"maxStamps"`
	IsFull        bool    `json:"isFull"`
}

// VerifyResponse HTTP response model.
type VerifyResponse struct {
	Card CardResponse `json:"card"`
}

type Handler struct {
	useCase VerifyStampCardUseCase
	logger  Logger
}

func NewHandler(useCase VerifyStampCardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stampcards/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stampcards/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &verifyStampcard.Request{
		ClientID: req.ClientID,
		Email:    req.Email,
		Code:     req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, verifyStampcard.ErrCodeInvalid):
			h.logger.Warn("POST /stampcards/verify - Invalid code")
			handlers.RespondBadRequest(w, msgCodeInvalid)

		case errors.Is(err, verifyStampcard.ErrCodeExpired):
			h.logger.Warn("POST /stampcards/verify - Expired code")
			handlers.RespondError(w, http.StatusGone, msgCodeExpired)

		case errors.Is(err, verifyStampcard.ErrCardNotFound):
			h.logger.Warn("POST /stampcards/verify - Card not found")
			handlers.RespondNotFound(w, msgCardNotFound)

		case errors.Is(err, verifyStampcard.ErrInvalidInput):
			h.logger.Warn("POST /stampcards/verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /stampcards/verify - Failed to verify: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	card := result.Card
	h.logger.Info("POST /stampcards/verify - Card verified: card_id=%d", card.ID)
	handlers.RespondJSON(w, http.StatusOK, VerifyResponse{Card: CardResponse{
		ID:            card.ID,
		Name:          card.Name,
		ReferralCode:  card.ReferralCode,
		StampCount:    card.StampCount,
		ReferralCount: card.ReferralCount,
		MaxStamps:     card.MaxStamps,
		IsFull:        card.IsFull,
	}})
}
