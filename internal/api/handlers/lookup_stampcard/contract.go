package lookup_stampcard

import (
	"context"

	lookupStampcard "github.com/kparturi/shop-backend/internal/usecase/lookup_stampcard"
)

type LookupStampCardUseCase interface {
	Execute(ctx context.Context, req *lookupStampcard.Request) (*lookupStampcard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
