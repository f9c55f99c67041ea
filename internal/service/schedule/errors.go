package schedule

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNotLoaded возвращается при обращении к хранилищу до первичной загрузки
	ErrNotLoaded = errors.New("schedule store is not loaded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
