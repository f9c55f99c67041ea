package move_reservation

import (
	"context"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// Store интерфейс хранилища расписания
type Store interface {
	GetByID(id int64) (domain.Reservation, error)
	ApplyMove(ctx context.Context, id int64, date time.Time, start, end types.TimeString) (domain.Reservation, error)
}

// MoveValidator хук политики проверки переносов
// Вердикт внешнего коллаборатора принимается как есть
type MoveValidator interface {
	Validate(res domain.Reservation, date time.Time, start types.TimeString) domain.MoveDecision
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
