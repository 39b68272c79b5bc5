package send_verification_code

import (
	"context"

	sendVerificationCode "github.com/kparturi/shop-backend/internal/usecase/send_verification_code"
)

type SendVerificationCodeUseCase interface {
	Execute(ctx context.Context, req *sendVerificationCode.Request) (*sendVerificationCode.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
