package get_calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	buildCalendar "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/build_calendar"
)

// ToUseCaseRequest формирует запрос use case из query параметров
//
// Параметр venues трехзначный: отсутствие параметра или значение "all"
// означает все площадки, присутствующий но пустой параметр - пустой выбор
// (ни одной площадки), иначе - список ID через запятую
func ToUseCaseRequest(query url.Values, now time.Time) (*buildCalendar.Request, error) {
	viewStr := query.Get("view")
	if viewStr == "" {
		viewStr = string(domain.ViewMonth)
	}
	view, err := domain.ParseViewKind(viewStr)
	if err != nil {
		return nil, fmt.Errorf("invalid view: %w", err)
	}

	date := now
	if dateStr := query.Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
	}

	return &buildCalendar.Request{
		View:      view,
		Date:      date,
		Selection: parseVenueSelection(query),
		Query:     query.Get("q"),
	}, nil
}

func parseVenueSelection(query url.Values) domain.VenueSelection {
	if !query.Has("venues") {
		return domain.AllVenues()
	}

	raw := query.Get("venues")
	if raw == "all" {
		return domain.AllVenues()
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return domain.SelectVenues(ids)
}
