package create_booking

import (
	"errors"
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
	createBooking "github.com/kparturi/shop-backend/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "virheellinen pyyntö"
	msgInvalidDateOrTime   = "virheellinen päivämäärä tai aika"
	msgInvalidName         = "nimi on liian lyhyt"
	msgInvalidPhone        = "virheellinen puhelinnumero"
	msgInvalidEmail        = "virheellinen sähköpostiosoite"
	msgServiceNotFound     = "palvelua ei löytynyt"
	msgServiceNotBookable  = "palvelua ei voi varata itsenäisesti"
	msgAddOnNotAllowed     = "lisäpalvelu ei sovi valittuun palveluun"
	msgShopClosed          = "liike on suljettu valittuna päivänä"
	msgInvalidBookingDate  = "varausaika on jo mennyt"
	msgOutsideOpeningHours = "aika on aukioloaikojen ulkopuolella"
	msgSlotNotAvailable    = "valittu aika ei ole enää vapaana"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotBookable):
			h.logger.Warn("POST /bookings - Service not bookable on its own: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotBookable)

		case errors.Is(err, createBooking.ErrAddOnNotAllowed):
			h.logger.Warn("POST /bookings - Add-on not allowed: service_id=%d, add_on_ids=%v",
				req.ServiceID, req.AddOnIDs)
			handlers.RespondBadRequest(w, msgAddOnNotAllowed)

		case errors.Is(err, createBooking.ErrShopClosed):
			h.logger.Warn("POST /bookings - Shop closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrOutsideOpeningHours):
			h.logger.Warn("POST /bookings - Outside opening hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideOpeningHours)

		case errors.Is(err, createBooking.ErrInvalidName):
			h.logger.Warn("POST /bookings - Invalid customer name")
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid customer phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings - Invalid customer email")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, time=%s",
		result.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
