package verify_stampcard

import (
	"context"

	verifyStampcard "github.com/kparturi/shop-backend/internal/usecase/verify_stampcard"
)

type VerifyStampCardUseCase interface {
	Execute(ctx context.Context, req *verifyStampcard.Request) (*verifyStampcard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
