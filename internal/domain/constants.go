package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultTimezone            = "America/Sao_Paulo"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы записей, которые занимают время мастера
// Используется репозиториями для фильтрации на стороне БД
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ActiveStatusStrings возвращает ActiveStatuses в виде строк (для SQL и PostgREST фильтров)
func ActiveStatusStrings() []string {
	result := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		result[i] = string(s)
	}
	return result
}
