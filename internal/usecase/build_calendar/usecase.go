package build_calendar

import (
	"context"
	"fmt"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// UseCase use case построения календарной сетки
//
// Селектор представлений: единственная точка диспетчеризации по виду
// представления. Каждый вид - своя стратегия раскладки; switch исчерпывающий,
// добавление нового вида требует нового case и новой стратегии
type UseCase struct {
	agenda       AgendaService
	venues       VenueResolver
	geometry     Geometry
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	agenda AgendaService,
	venues VenueResolver,
	geometry Geometry,
	logger Logger,
) *UseCase {
	return &UseCase{
		agenda:       agenda,
		venues:       venues,
		geometry:     geometry,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildCalendar: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BuildCalendar: view=%s, date=%s, all=%t, venues=%d, query=%q",
		req.View, req.Date.Format(domain.DateFormat), req.Selection.All, len(req.Selection.IDs), req.Query)

	// Конвейер фильтрации и агрегации всегда выполняется до раскладки:
	// стратегии работают только с выжившими бронированиями
	aggregates := uc.agenda.BuildAgenda(req.Selection, req.Query)
	now := uc.timeProvider.Now()

	resp := &Response{View: req.View}

	switch req.View {
	case domain.ViewMonth:
		resp.Month = uc.buildMonth(req.Date, aggregates.EventsByDay, now)
	case domain.ViewWeek:
		resp.Week = uc.buildWeek(req.Date, aggregates.EventsByDay, now)
	case domain.ViewDay:
		resp.Day = uc.buildDay(req.Date, aggregates.EventsByDay, now)
	case domain.ViewList:
		resp.List = uc.buildList(req.Date, aggregates.EventsByDay)
	default:
		// Недостижимо после validateRequest; страховка на случай нового вида
		return nil, fmt.Errorf("%w: unsupported view kind %q", ErrInvalidInput, req.View)
	}

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.View.Valid() {
		return fmt.Errorf("%w: unknown view kind %q", ErrInvalidInput, req.View)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
