package list_blocks

import (
	"context"

	"github.com/kparturi/shop-backend/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlocks(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
