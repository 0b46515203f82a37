package store

import (
	"context"
	"path/filepath"
	"sync"

	domain "github.com/tiozaobarbearia/agenda-api/internal/domain/booking"
	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
	"github.com/tiozaobarbearia/agenda-api/internal/models"
)

const ledgerFileName = "agendamentos.json"

type ledgerFile struct {
	Agendamentos []models.Appointment `json:"agendamentos"`
}

// AppointmentStore is the flat-JSON appointment ledger. It is the sole
// reader/writer of agendamentos.json; all commits serialize on mu so two
// concurrent bookings of the same (date, slot) can never both land.
type AppointmentStore struct {
	path string
	mu   sync.RWMutex
}

func NewAppointmentStore(dataDir string) (*AppointmentStore, error) {
	path := filepath.Join(dataDir, ledgerFileName)
	if err := ensureFile(path, ledgerFile{Agendamentos: []models.Appointment{}}); err != nil {
		return nil, err
	}
	return &AppointmentStore{path: path}, nil
}

// load and save expect the caller to hold the appropriate lock.
func (s *AppointmentStore) load() ([]models.Appointment, error) {
	var doc ledgerFile
	if err := readFileJSON(s.path, &doc); err != nil {
		return nil, err
	}
	return doc.Agendamentos, nil
}

func (s *AppointmentStore) save(list []models.Appointment) error {
	return writeFileJSON(s.path, ledgerFile{Agendamentos: list})
}

// --------------------------------------------------
// Create (atomic conflict check + append)
// --------------------------------------------------

func (s *AppointmentStore) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}

	for i := range list {
		other := &list[i]
		if other.Date == ap.Date && other.Slot == ap.Slot && domain.IsActive(other) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	list = append(list, *ap)
	return s.save(list)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (s *AppointmentStore) ListForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0)
	for _, ap := range list {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (s *AppointmentStore) ListByCustomer(
	ctx context.Context,
	customer string,
) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}

	// newest first: the ledger is append-only
	out := make([]models.Appointment, 0)
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Customer == customer {
			out = append(out, list[i])
		}
	}
	return out, nil
}

func (s *AppointmentStore) GetAppointmentForCustomer(
	ctx context.Context,
	appointmentID string,
	customer string,
) (*models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == appointmentID && list[i].Customer == customer {
			ap := list[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (s *AppointmentStore) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == ap.ID {
			list[i] = *ap
			return s.save(list)
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}
