package domain

import "time"

// Weekday день недели по ISO 8601: понедельник = 1, воскресенье = 7.
// Является ключом хранения расписания, поэтому не зависит от названий дней на каком-либо языке.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf возвращает ISO-день недели для календарной даты
func WeekdayOf(date time.Time) Weekday {
	wd := date.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// IsValid проверяет, что значение входит в 1..7
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.IsValid() {
		return "invalid"
	}
	return time.Weekday(int(w) % 7).String()
}
