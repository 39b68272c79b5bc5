package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/kparturi/shop-backend/internal/domain"
	bookingRepo "github.com/kparturi/shop-backend/internal/infra/storage/booking"
	"github.com/kparturi/shop-backend/internal/service/bookings/models"
)

// Service covers the shop-side booking operations: the daily schedule,
// single booking lookups, cancellation and status changes.
type Service struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates the admin bookings service.
func NewService(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking with its service lines.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceLines(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, services), nil
}

// ListByDate returns the schedule for one day, ordered by start time.
// Cancelled and completed bookings are included only when requested.
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByDate: fetching bookings for date=%s, includeInactive=%t",
		req.Date.Format(domain.DateFormat), req.IncludeInactive)

	filter := domain.BookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}
	if !req.IncludeInactive {
		filter.Statuses = domain.ActiveStatuses
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Date:     req.Date.Format(domain.DateFormat),
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		services, err := s.serviceLines(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(booking, services))
	}

	s.logger.Info("ListByDate: successfully fetched %d bookings for date=%s",
		len(resp.Bookings), req.Date.Format(domain.DateFormat))
	return resp, nil
}

// Cancel cancels a booking on behalf of the shop.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus moves a booking to a new lifecycle status. Cancellation
// goes through Cancel so the reason and timestamp get recorded.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested for booking id=%d via status update", bookingID)
		return fmt.Errorf("%w: use the cancel endpoint", ErrInvalidInput)
	}

	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// serviceLines resolves the services attached to a booking, main service
// first.
func (s *Service) serviceLines(ctx context.Context, bookingID int64) ([]*domain.Service, error) {
	ids, err := s.bookingRepo.GetServiceIDs(ctx, bookingID)
	if err != nil {
		s.logger.Error("serviceLines: failed to get service ids for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: serviceLines - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("serviceLines: failed to resolve services for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: serviceLines - repository error: %v", ErrInternal, err)
	}

	// GetAllByIDs orders by id; restore selection order.
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	ordered := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := byID[id]; ok {
			ordered = append(ordered, svc)
		}
	}
	return ordered, nil
}
