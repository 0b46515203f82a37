package booking

import (
	"context"

	"github.com/tiozaobarbearia/agenda-api/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateAppointment appends ap to the ledger. The (date, slot) conflict
	// check and the write happen atomically under the ledger's writer lock;
	// a taken slot surfaces as the slot_taken business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (reads) --------

	ListForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListByCustomer(
		ctx context.Context,
		customer string,
	) ([]models.Appointment, error)

	GetAppointmentForCustomer(
		ctx context.Context,
		appointmentID string,
		customer string,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
