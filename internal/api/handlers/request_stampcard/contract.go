package request_stampcard

import (
	"context"

	requestStampcard "github.com/kparturi/shop-backend/internal/usecase/request_stampcard"
)

type RequestStampCardUseCase interface {
	Execute(ctx context.Context, req *requestStampcard.Request) (*requestStampcard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
