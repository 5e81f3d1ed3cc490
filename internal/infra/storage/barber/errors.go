package barber

import "errors"

var (
	// ErrBarberNotFound возвращается, когда мастер не найден в указанном барбершопе
	ErrBarberNotFound = errors.New("barber.repository: barber not found")

	ErrBuildQuery = errors.New("barber.repository: failed to build query")
	ErrExecQuery  = errors.New("barber.repository: failed to execute query")
	ErrScanRow    = errors.New("barber.repository: failed to scan row")
)
