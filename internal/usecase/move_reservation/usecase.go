package move_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/schedule"
)

// UseCase use case переноса бронирования перетаскиванием
//
// Жест переноса атомарен: проверка политики и мутация выполняются под
// одним мьютексом, два конкурентных жеста не могут пройти валидацию
// по одному и тому же снимку
type UseCase struct {
	store     Store
	validator MoveValidator
	txManager TransactionManager
	logger    Logger

	gestureMu sync.Mutex
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store Store,
	validator MoveValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     store,
		validator: validator,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveReservation: validation failed: %v", err)
		return nil, err
	}

	uc.gestureMu.Lock()
	defer uc.gestureMu.Unlock()

	// 2. Получение бронирования из снимка
	res, err := uc.store.GetByID(req.ReservationID)
	if err != nil {
		if errors.Is(err, schedule.ErrReservationNotFound) {
			uc.logger.Warn("MoveReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("MoveReservation: store error for id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Execute - store error: %v", ErrInternal, err)
	}

	// 3. Время начала по умолчанию - текущее (перенос только по дате)
	start := req.TargetStart
	if start.IsZero() {
		start = res.StartTime
	}

	// 4. Проверка политики переноса
	decision := uc.validator.Validate(res, req.TargetDate, start)
	if !decision.Valid {
		uc.logger.Info("MoveReservation: move of id=%d to %s %s rejected: %s",
			req.ReservationID, req.TargetDate.Format(domain.DateFormat), start, decision.Reason)
		return &Response{Accepted: false, Reason: decision.Reason}, nil
	}

	// 5. Вычисление времени окончания с сохранением длительности
	duration, err := res.DurationMinutes()
	if err != nil {
		uc.logger.Warn("MoveReservation: reservation id=%d has invalid time range: %v", req.ReservationID, err)
		return &Response{Accepted: false, Reason: "reservation has an invalid time range"}, nil
	}

	end, err := start.AddMinutes(duration)
	if err != nil {
		return &Response{Accepted: false, Reason: "move would push the reservation past midnight"}, nil
	}

	// 6. Применение переноса в транзакции
	var moved domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var txErr error
		moved, txErr = uc.store.ApplyMove(ctx, req.ReservationID, req.TargetDate, start, end)
		return txErr
	})
	if err != nil {
		if errors.Is(err, schedule.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("MoveReservation: failed to apply move for id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Execute - apply move: %v", ErrInternal, err)
	}

	uc.logger.Info("MoveReservation: reservation id=%d moved to %s %s-%s",
		moved.ID, moved.Date.Format(domain.DateFormat), moved.StartTime, moved.EndTime)

	return &Response{
		Accepted:    true,
		Reservation: toResponseReservation(moved),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation ID must be positive", ErrInvalidInput)
	}
	if req.TargetDate.IsZero() {
		return fmt.Errorf("%w: target date is required", ErrInvalidInput)
	}
	// Пустое время начала допустимо: перенос только по дате
	if !req.TargetStart.IsZero() {
		if err := req.TargetStart.Validate(); err != nil {
			return fmt.Errorf("%w: invalid target start time: %v", ErrInvalidInput, err)
		}
	}
	return nil
}
