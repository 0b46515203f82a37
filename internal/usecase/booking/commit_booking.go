package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tiozaobarbearia/agenda-api/internal/audit"
	"github.com/tiozaobarbearia/agenda-api/internal/clock"
	domain "github.com/tiozaobarbearia/agenda-api/internal/domain/booking"
	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
	"github.com/tiozaobarbearia/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CommitBookingInput struct {
	Customer string
	Date     string
	Slot     string
	Service  string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CommitBooking struct {
	repo  domain.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewCommitBooking(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CommitBooking {
	return &CommitBooking{
		repo:  repo,
		clk:   clk,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CommitBooking) Execute(
	ctx context.Context,
	in CommitBookingInput,
) (*models.Appointment, error) {

	customer := strings.TrimSpace(in.Customer)
	if customer == "" {
		return nil, httperr.ErrBusiness("missing_customer")
	}

	// date/slot selection: picking a slot requires a date first
	var sel domain.Selection
	if in.Date != "" {
		sel.SelectDate(in.Date)
	}
	if in.Slot != "" {
		if err := sel.SelectSlot(in.Slot); err != nil {
			return nil, err
		}
	}

	date, slot, err := sel.Complete()
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	now := uc.clk.Now()
	if domain.IsPastDate(parsed, now) {
		return nil, httperr.ErrBusiness("past_date")
	}

	if !domain.IsCatalogSlot(slot) {
		return nil, httperr.ErrBusiness("unknown_slot")
	}

	ap := &models.Appointment{
		ID:        uuid.NewString(),
		Customer:  customer,
		Date:      date,
		Slot:      slot,
		Service:   in.Service,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
		CreatedAt: now.Format(domain.TimestampLayout),
	}

	// the ledger re-checks the (date, slot) pair under its writer lock;
	// an availability call made earlier by the client counts for nothing here
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: customer,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
