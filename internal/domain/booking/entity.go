package booking

import (
	"time"

	"github.com/tiozaobarbearia/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Normalize(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = now.Format(TimestampLayout)
	return nil
}

// IsActive reports whether ap still occupies its (date, slot) pair.
func IsActive(ap *models.Appointment) bool {
	return Normalize(ap.Status) == StatusScheduled
}
