package availability

import "errors"

var (
	// ErrInvalidConfig возвращается при неположительном шаге слотов или длительности услуги
	ErrInvalidConfig = errors.New("availability: invalid config")
)
