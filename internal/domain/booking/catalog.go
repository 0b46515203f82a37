package booking

import "github.com/tiozaobarbearia/agenda-api/internal/models"

// slotCatalog is the fixed daily roster of bookable slots. Order matters:
// availability is always reported in catalog order. There is no 12:30 on
// purpose, the shop closes for lunch.
var slotCatalog = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00",
	"16:30", "17:00",
}

// Slots returns the catalog as a fresh slice so callers cannot mutate it.
func Slots() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

func IsCatalogSlot(slot string) bool {
	for _, s := range slotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}

// Services is the shop's price list. The service field on an appointment
// stays free-form; this list only feeds the picker.
var Services = []models.Service{
	{Name: "Corte", Price: 40.00},
	{Name: "Barba", Price: 30.00},
	{Name: "Corte + Barba", Price: 60.00},
}
