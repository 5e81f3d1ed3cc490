package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не в формате HH:MM или HH:MM:SS
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time of day out of range")
)

// TimeOfDay время внутри дня с точностью до минуты (минуты от полуночи, 0..1439)
// Вся арифметика доступности ведётся в минутах, секунды отбрасываются
type TimeOfDay int

// NewTimeOfDay создаёт время из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay парсит "HH:MM" (формат API) или "HH:MM:SS" (формат колонок TIME в Postgres)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		values[i] = v
	}

	if len(values) == 3 && (values[2] < 0 || values[2] > 59) {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return NewTimeOfDay(values[0], values[1])
}

// MustParseTimeOfDay как ParseTimeOfDay, но паникует при ошибке
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromTime берёт часы и минуты из time.Time как есть, без перевода часовых поясов
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Add сдвигает время на указанное количество минут.
// Результат может выйти за 24:00 - это нормально для концов интервалов.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// IsValid проверяет, что время лежит внутри суток
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// String возвращает время в формате HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Scan реализует sql.Scanner для колонок TIME
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.parseInto(v)
	case []byte:
		return t.parseInto(string(v))
	case time.Time:
		*t = TimeOfDayFromTime(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeOfDay", ErrInvalidTimeFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, int(t))
	}
	return t.String() + ":00", nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	return t.parseInto(s)
}

func (t *TimeOfDay) parseInto(s string) error {
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
