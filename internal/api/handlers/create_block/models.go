package create_block

import (
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/service/schedule/models"
	"github.com/kparturi/shop-backend/pkg/types"
)

// CreateBlockRequest HTTP request model.
type CreateBlockRequest struct {
	Date      string  `json:"date"`      // "2026-09-07"
	StartTime string  `json:"startTime"` // "12:00"
	EndTime   string  `json:"endTime"`   // "13:00"
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest converts the HTTP request, parsing date and times.
func (r *CreateBlockRequest) ToServiceRequest() (*models.CreateBlockRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockRequest{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    r.Reason,
	}, nil
}
