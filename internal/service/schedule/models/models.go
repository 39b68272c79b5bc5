package models

import (
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/pkg/types"
)

// Request models

// CreateBlockRequest blocks a period from online booking.
type CreateBlockRequest struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string
}

// ListBlocksRequest fetches blocked periods for a date range.
type ListBlocksRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response models

// BlockResponse carries one blocked period.
type BlockResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`      // "2026-09-07"
	StartTime string  `json:"startTime"` // "12:00"
	EndTime   string  `json:"endTime"`   // "13:00"
	Reason    *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse carries the blocked periods for a range.
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Conversion helpers

// ToDomainBlock converts the request into a block that counts against
// slot computation.
func (r *CreateBlockRequest) ToDomainBlock() *domain.AvailabilityBlock {
	return &domain.AvailabilityBlock{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		IsBooked:  true,
		Reason:    r.Reason,
	}
}

// FromDomainBlock converts the domain model into a DTO.
func FromDomainBlock(b *domain.AvailabilityBlock) *BlockResponse {
	if b == nil {
		return nil
	}

	return &BlockResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList converts a list of domain models into a DTO.
func FromDomainBlockList(blocks []*domain.AvailabilityBlock) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}

	for _, block := range blocks {
		if blockResp := FromDomainBlock(block); blockResp != nil {
			resp.Blocks = append(resp.Blocks, *blockResp)
		}
	}

	return resp
}
