package booking

import "github.com/tiozaobarbearia/agenda-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// Normalize maps the empty status of legacy ledger records to scheduled.
func Normalize(raw string) Status {
	if raw == "" {
		return StatusScheduled
	}
	return Status(raw)
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
