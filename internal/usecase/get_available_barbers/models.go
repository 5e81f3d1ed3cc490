package get_available_barbers

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request запрос поиска мастеров, свободных в конкретное время
type Request struct {
	ShopID    int64
	ServiceID int64
	Date      time.Time
	Time      types.TimeOfDay // время начала услуги
}

// Response мастера в порядке, в котором их вернуло хранилище
type Response struct {
	Date      time.Time
	Time      types.TimeOfDay
	ShopID    int64
	ServiceID int64
	BarberIDs []int64 // Всегда не nil
}
