package booking

import (
	"time"

	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
)

const (
	DateLayout      = "02/01/2006"
	TimestampLayout = "02/01/2006 15:04"
)

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return t, nil
}

// IsPastDate compares calendar days only; booking for later today is allowed.
func IsPastDate(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return date.Before(today)
}
