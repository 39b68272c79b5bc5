package get_week_slots

import (
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	getWeekSlots "github.com/kparturi/shop-backend/internal/usecase/get_week_slots"
)

// WeekSlotsResponse HTTP response model.
type WeekSlotsResponse struct {
	WeekStart            string     `json:"weekStart"` // Monday, "2026-09-07"
	TotalDurationMinutes int        `json:"totalDurationMinutes"`
	Days                 []DaySlots `json:"days"`
}

// DaySlots lists the free start times of one day.
type DaySlots struct {
	Date   string   `json:"date"`
	IsOpen bool     `json:"isOpen"`
	Slots  []string `json:"slots"`
}

// ToUseCaseRequest builds the use case request from query parameters.
func ToUseCaseRequest(dateStr string, serviceID int64, addOnIDs []int64) (*getWeekSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getWeekSlots.Request{
		Date:      date,
		ServiceID: serviceID,
		AddOnIDs:  addOnIDs,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getWeekSlots.Response) *WeekSlotsResponse {
	days := make([]DaySlots, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]string, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, slot.String())
		}
		days = append(days, DaySlots{
			Date:   day.Date.Format(domain.DateFormat),
			IsOpen: day.IsOpen,
			Slots:  slots,
		})
	}

	return &WeekSlotsResponse{
		WeekStart:            resp.WeekStart.Format(domain.DateFormat),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		Days:                 days,
	}
}
