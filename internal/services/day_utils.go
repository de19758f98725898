package services

import "time"

const dayKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayKeyLayout)
}

// WeekStart returns midnight of the first day (weekday 0) of the calendar
// week containing value.
func WeekStart(value time.Time, location *time.Location) time.Time {
	today := DateAtLocation(value, location)
	return today.AddDate(0, 0, -int(today.Weekday()))
}
