package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidConfig возвращается при неположительном шаге слотов или длительности услуги
	ErrInvalidConfig = errors.New("invalid availability configuration")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге барбершопа
	ErrServiceNotFound = errors.New("service not found")

	// ErrBarberNotFound возвращается, когда мастер не найден в барбершопе
	ErrBarberNotFound = errors.New("barber not found")

	// ErrUpstreamUnavailable возвращается при любой ошибке чтения данных
	ErrUpstreamUnavailable = errors.New("usecase: upstream unavailable")
)
