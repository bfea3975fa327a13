package dateutil

import "time"

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

func ParseMonth(s string) (time.Time, error) {
	return time.Parse(MonthLayout, s)
}

// MonthRange returns the first and last calendar day of a YYYY-MM month.
func MonthRange(month string) (time.Time, time.Time, error) {
	first, err := ParseMonth(month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

func DaysInMonth(month string) (int, error) {
	first, err := ParseMonth(month)
	if err != nil {
		return 0, err
	}
	return first.AddDate(0, 1, -1).Day(), nil
}
