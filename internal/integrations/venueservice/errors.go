package venueservice

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("venueservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("venueservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что VenueService недоступен и следует использовать
	// последний успешно загруженный справочник площадок
	ErrServiceDegraded = errors.New("venueservice unavailable: graceful degradation applied")
)
