package sync_date

import (
	"context"

	syncDate "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/sync_date"
)

type SyncDateUseCase interface {
	Execute(ctx context.Context, req *syncDate.Request) (*syncDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
