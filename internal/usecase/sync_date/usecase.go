package sync_date

import (
	"context"
	"fmt"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// UseCase контроллер синхронизации дат
//
// Согласует два независимых куска состояния: отображаемый период основного
// представления и дату, выбранную в мини-календаре. Правило синхронизации
// живет только здесь, а не размазано по UI-эффектам
type UseCase struct {
	listWindowDays int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр контроллера
func NewUseCase(listWindowDays int, logger Logger) *UseCase {
	if listWindowDays <= 0 {
		listWindowDays = domain.DefaultListWindowDays
	}
	return &UseCase{
		listWindowDays: listWindowDays,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет переход состояния
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SyncDate: validation failed: %v", err)
		return nil, err
	}

	switch req.Action {
	case ActionPick:
		return uc.pick(req), nil
	case ActionNavigate:
		return uc.navigate(req), nil
	case ActionSetView:
		return uc.setView(req), nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}
}

// pick обрабатывает выбор даты в мини-календаре
//
// Перецентрирование основного представления запрашивается только когда
// выбранная дата не видна в текущем периоде - выбор уже видимой даты
// не вызывает лишних перерисовок. Повторный выбор той же даты идемпотентен:
// после первого перехода Anchor == Target и правило больше не срабатывает
func (uc *UseCase) pick(req *Request) *Response {
	navigate := ShouldForceNavigate(req.View, req.Anchor, req.Target)

	resp := &Response{
		View:      req.View,
		Anchor:    req.Anchor,
		Picked:    startOfDay(req.Target),
		Navigated: navigate,
	}
	if navigate {
		resp.Anchor = startOfDay(req.Target)
	}

	uc.logger.Info("SyncDate: pick %s in %s view (anchor=%s) -> navigated=%t",
		req.Target.Format(domain.DateFormat), req.View, req.Anchor.Format(domain.DateFormat), navigate)

	return resp
}

// navigate обрабатывает навигацию основного представления
// После навигации дата мини-календаря всегда следует за якорем,
// чтобы мини-календарь визуально не расходился с основным представлением
func (uc *UseCase) navigate(req *Request) *Response {
	anchor := uc.step(req.View, req.Anchor, req.Direction)

	uc.logger.Info("SyncDate: navigate %s in %s view: %s -> %s",
		req.Direction, req.View, req.Anchor.Format(domain.DateFormat), anchor.Format(domain.DateFormat))

	return &Response{
		View:      req.View,
		Anchor:    anchor,
		Picked:    anchor,
		Navigated: true,
	}
}

// setView обрабатывает смену вида представления
// Якорь сохраняется, дата мини-календаря ресинхронизируется с ним
func (uc *UseCase) setView(req *Request) *Response {
	anchor := startOfDay(req.Anchor)

	uc.logger.Info("SyncDate: set view %s -> %s (anchor=%s)",
		req.View, req.TargetView, anchor.Format(domain.DateFormat))

	return &Response{
		View:      req.TargetView,
		Anchor:    anchor,
		Picked:    anchor,
		Navigated: true,
	}
}

// step вычисляет новый якорь для шага навигации
func (uc *UseCase) step(view domain.ViewKind, anchor time.Time, direction Direction) time.Time {
	if direction == DirectionToday {
		return startOfDay(uc.timeProvider.Now())
	}

	sign := 1
	if direction == DirectionPrev {
		sign = -1
	}

	switch view {
	case domain.ViewMonth:
		// Якорь месяца выравнивается по первому числу перед шагом,
		// чтобы 31 января + месяц не перепрыгивал февраль
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return first.AddDate(0, sign, 0)
	case domain.ViewWeek:
		return startOfDay(anchor).AddDate(0, 0, sign*domain.DaysPerWeek)
	case domain.ViewDay:
		return startOfDay(anchor).AddDate(0, 0, sign)
	case domain.ViewList:
		return startOfDay(anchor).AddDate(0, 0, sign*uc.listWindowDays)
	default:
		return startOfDay(anchor)
	}
}

// ShouldForceNavigate решает, требует ли выбранная дата перецентрирования
// основного представления для текущего вида:
//   - month: выбранный месяц+год отличается от месяца+года якоря
//   - week: выбранная дата вне недели якоря (недели с воскресенья)
//   - day: выбранная дата не совпадает с днем якоря
//   - list: каждый выбор перецентрирует окно; исключение - повторный выбор
//     текущего якоря, который уже центрирует окно (идемпотентность)
func ShouldForceNavigate(view domain.ViewKind, anchor, picked time.Time) bool {
	switch view {
	case domain.ViewMonth:
		return anchor.Year() != picked.Year() || anchor.Month() != picked.Month()
	case domain.ViewWeek:
		return !startOfWeek(anchor).Equal(startOfWeek(picked))
	case domain.ViewDay:
		return !sameDay(anchor, picked)
	case domain.ViewList:
		return !sameDay(anchor, picked)
	default:
		return false
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.View.Valid() {
		return fmt.Errorf("%w: unknown view kind %q", ErrInvalidInput, req.View)
	}
	if req.Anchor.IsZero() {
		return fmt.Errorf("%w: anchor is required", ErrInvalidInput)
	}

	switch req.Action {
	case ActionPick:
		if req.Target.IsZero() {
			return fmt.Errorf("%w: target date is required for pick", ErrInvalidInput)
		}
	case ActionNavigate:
		switch req.Direction {
		case DirectionPrev, DirectionNext, DirectionToday:
		default:
			return fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, req.Direction)
		}
	case ActionSetView:
		if !req.TargetView.Valid() {
			return fmt.Errorf("%w: unknown target view %q", ErrInvalidInput, req.TargetView)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	return nil
}

// startOfDay обнуляет время, оставляя только дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek возвращает воскресенье недели, содержащей дату
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// sameDay проверяет, что две даты относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
