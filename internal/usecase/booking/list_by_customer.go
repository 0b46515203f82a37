package booking

import (
	"context"

	domain "github.com/tiozaobarbearia/agenda-api/internal/domain/booking"
	"github.com/tiozaobarbearia/agenda-api/internal/dto"
)

type ListByCustomer struct {
	repo domain.Repository
}

func NewListByCustomer(repo domain.Repository) *ListByCustomer {
	return &ListByCustomer{repo: repo}
}

func (uc *ListByCustomer) Execute(
	ctx context.Context,
	customer string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListByCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:        ap.ID,
			Date:      ap.Date,
			Slot:      ap.Slot,
			Service:   ap.Service,
			Notes:     ap.Notes,
			Status:    string(domain.Normalize(ap.Status)),
			CreatedAt: ap.CreatedAt,
		})
	}

	return out, nil
}
