package get_available_barbers

import (
	"context"

	getAvailableBarbers "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_barbers"
)

type GetAvailableBarbersUseCase interface {
	Execute(ctx context.Context, req *getAvailableBarbers.Request) (*getAvailableBarbers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
