package get_available_barbers

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге барбершопа
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidConfig возвращается при некорректной настройке сетки слотов или длительности услуги
	ErrInvalidConfig = errors.New("usecase: invalid availability configuration")

	// ErrUpstreamUnavailable возвращается, если данные хотя бы одного мастера не удалось получить
	ErrUpstreamUnavailable = errors.New("usecase: upstream unavailable")
)
