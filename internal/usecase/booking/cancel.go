package booking

import (
	"context"

	"github.com/tiozaobarbearia/agenda-api/internal/audit"
	"github.com/tiozaobarbearia/agenda-api/internal/clock"
	domain "github.com/tiozaobarbearia/agenda-api/internal/domain/booking"
	"github.com/tiozaobarbearia/agenda-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		clk:   clk,
		audit: audit,
	}
}

// Execute cancels one of the customer's own appointments. The freed
// (date, slot) pair becomes bookable again.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	customer string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCustomer(ctx, appointmentID, customer)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, uc.clk.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: customer,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
