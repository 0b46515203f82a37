package booking

import "github.com/tiozaobarbearia/agenda-api/internal/httperr"

// Selection tracks one booking attempt: no date -> date -> date+slot.
// Picking a new date drops any slot chosen for the old one.
type Selection struct {
	date string
	slot string
}

func (s *Selection) SelectDate(date string) {
	s.date = date
	s.slot = ""
}

func (s *Selection) SelectSlot(slot string) error {
	if s.date == "" {
		return httperr.ErrBusiness("missing_date")
	}
	s.slot = slot
	return nil
}

// Complete validates the attempt is fully formed and hands back the pair.
func (s *Selection) Complete() (date, slot string, err error) {
	if s.date == "" {
		return "", "", httperr.ErrBusiness("missing_date")
	}
	if s.slot == "" {
		return "", "", httperr.ErrBusiness("missing_slot")
	}
	return s.date, s.slot, nil
}
