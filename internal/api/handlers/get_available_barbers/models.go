package get_available_barbers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableBarbers "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_barbers"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailableBarbersResponse HTTP response model
type AvailableBarbersResponse struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	ShopID    int64   `json:"shopId"`
	ServiceID int64   `json:"serviceId"`
	BarberIDs []int64 `json:"barberIds"`
}

func FromUseCaseResponse(resp *getAvailableBarbers.Response) *AvailableBarbersResponse {
	ids := resp.BarberIDs
	if ids == nil {
		ids = []int64{}
	}

	return &AvailableBarbersResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		ShopID:    resp.ShopID,
		ServiceID: resp.ServiceID,
		BarberIDs: ids,
	}
}

// ToUseCaseRequest разбирает дату (YYYY-MM-DD) и время (HH:MM)
func ToUseCaseRequest(shopID, serviceID int64, dateStr, timeStr string) (*getAvailableBarbers.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	slot, err := types.ParseTimeOfDay(timeStr)
	if err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}

	return &getAvailableBarbers.Request{
		ShopID:    shopID,
		ServiceID: serviceID,
		Date:      date,
		Time:      slot,
	}, nil
}
