package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/kparturi/shop-backend/internal/domain"
	availabilityRepo "github.com/kparturi/shop-backend/internal/infra/storage/availability"
	"github.com/kparturi/shop-backend/internal/service/schedule/models"
)

// Service manages blocked periods: lunch breaks, holidays and other
// stretches the shop keeps out of online booking.
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService creates the schedule service.
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// CreateBlock blocks a period from online booking. The period must fall
// within the day's operating hours; existing bookings are untouched.
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: blocking %s %s-%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := s.validateBlock(req); err != nil {
		s.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, req.ToDomainBlock())
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: successfully created block id=%d", created.ID)
	return models.FromDomainBlock(created), nil
}

// DeleteBlock removes a blocked period.
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlock: deleting block id=%d", id)

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%d", id)
	return nil
}

// ListBlocks returns the blocked periods within the date range.
func (s *Service) ListBlocks(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	s.logger.Info("ListBlocks: fetching blocks %s..%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	blocks, err := s.availabilityRepo.GetBookedByDateRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlocks: successfully fetched %d blocks", len(blocks))
	return models.FromDomainBlockList(blocks), nil
}

// validateBlock checks the period against the operating hours.
func (s *Service) validateBlock(req *models.CreateBlockRequest) error {
	if req.StartTime == "" || req.EndTime == "" {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endMinutes, err := req.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if startMinutes >= endMinutes {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	window, open := domain.HoursForDay(req.Date)
	if !open {
		return ErrShopClosed
	}
	openMinutes, err := window.Open.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	closeMinutes, err := window.Close.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if startMinutes < openMinutes || endMinutes > closeMinutes {
		return fmt.Errorf("%w: block must fall within opening hours %s-%s",
			ErrInvalidInput, window.Open, window.Close)
	}

	return nil
}
