package utils

import (
	"time"
	"timegrid-service/internal/pkg/constvars"
	"timegrid-service/internal/pkg/exceptions"
)

// NormalizeToDay truncates t to midnight UTC. Every time block is stored
// under its day at this canonical instant; the (userId, date) identity key
// and the range queries both depend on it.
func NormalizeToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDay(value string) (time.Time, error) {
	day, err := time.Parse(constvars.DateLayout, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return NormalizeToDay(day), nil
}
