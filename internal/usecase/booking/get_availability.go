package booking

import (
	"context"

	domain "github.com/tiozaobarbearia/agenda-api/internal/domain/booking"
	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the free slots of a date in catalog order. It reads the
// ledger fresh on every call; staleness between this and a later commit is
// resolved by the commit's own conflict check.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool, len(appointments))
	for i := range appointments {
		if domain.IsActive(&appointments[i]) {
			occupied[appointments[i].Slot] = true
		}
	}

	slots := make([]string, 0)
	for _, slot := range domain.Slots() {
		if !occupied[slot] {
			slots = append(slots, slot)
		}
	}

	return slots, nil
}
