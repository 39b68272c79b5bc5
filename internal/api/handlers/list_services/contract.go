package list_services

import (
	"context"

	"github.com/kparturi/shop-backend/internal/domain"
)

type ServiceCatalog interface {
	GetActive(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
