package create_block

import (
	"context"

	"github.com/kparturi/shop-backend/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
