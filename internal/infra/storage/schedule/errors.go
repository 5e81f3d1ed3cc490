package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда для барбершопа нет строки расписания на этот день недели
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrScanRow возвращается при ошибке выполнения запроса или сканирования строки
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
