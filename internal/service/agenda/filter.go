package agenda

import (
	"sort"
	"strings"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// Чистые функции конвейера фильтрации и агрегации
// Не мутируют входные данные и детерминированы для одного и того же входа:
// пересчет - единственный механизм обновления агрегатов

// filterByVenues отбирает бронирования по выбранным площадкам
// Выбор "все площадки" пропускает всё; явно пустой набор - валидное
// состояние "ничего не показывать", а не синоним "всех"
func filterByVenues(reservations []domain.Reservation, selection domain.VenueSelection) []domain.Reservation {
	if selection.All {
		return reservations
	}

	result := make([]domain.Reservation, 0, len(reservations))
	for _, res := range reservations {
		if selection.Contains(res.VenueID) {
			result = append(result, res)
		}
	}
	return result
}

// filterByQuery отбирает бронирования по текстовому запросу
// Поиск регистронезависимый по имени клиента, названию площадки
// (разрешенному через справочник) и виду спорта
func filterByQuery(reservations []domain.Reservation, query string, venueName func(string) string) []domain.Reservation {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return reservations
	}

	result := make([]domain.Reservation, 0, len(reservations))
	for _, res := range reservations {
		if matchesQuery(res, query, venueName) {
			result = append(result, res)
		}
	}
	return result
}

// matchesQuery проверяет совпадение хотя бы по одному из трёх полей
func matchesQuery(res domain.Reservation, query string, venueName func(string) string) bool {
	if strings.Contains(strings.ToLower(res.ClientName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(venueName(res.VenueID)), query) {
		return true
	}
	if res.Sport != nil && strings.Contains(strings.ToLower(*res.Sport), query) {
		return true
	}
	return false
}

// groupByDay раскладывает бронирования по дням (ключ YYYY-MM-DD)
// Записи с неразрешимой датой попадают в сигнальный бакет "invalid",
// а не отбрасываются - проблемы в данных должны быть видны
// Внутри дня порядок: по времени начала, затем по ID (стабильный)
func groupByDay(reservations []domain.Reservation) map[string][]domain.Reservation {
	byDay := make(map[string][]domain.Reservation)
	for _, res := range reservations {
		key := res.DayKey()
		byDay[key] = append(byDay[key], res)
	}

	for key := range byDay {
		day := byDay[key]
		sort.SliceStable(day, func(i, j int) bool {
			a, b := day[i], day[j]
			am, aErr := a.StartTime.Minutes()
			bm, bErr := b.StartTime.Minutes()
			// Невалидное время уходит в конец дня
			if aErr != nil || bErr != nil {
				if (aErr == nil) != (bErr == nil) {
					return aErr == nil
				}
				return a.ID < b.ID
			}
			if am != bm {
				return am < bm
			}
			return a.ID < b.ID
		})
	}

	return byDay
}

// countByVenue подсчитывает выжившие бронирования по площадкам
// В результате присутствуют только площадки с ненулевым счетчиком;
// бакет "invalid" на счетчики не влияет - позиционирование и подсчет
// независимые задачи
func countByVenue(reservations []domain.Reservation) map[string]int {
	counts := make(map[string]int)
	for _, res := range reservations {
		counts[res.VenueID]++
	}
	return counts
}
