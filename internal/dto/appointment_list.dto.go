package dto

type AppointmentListDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Service   string `json:"service"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
