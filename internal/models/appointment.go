package models

// Appointment is one committed booking in the ledger. The JSON keys mirror
// the agendamentos.json layout the mobile app already writes, so ledgers
// produced by either side stay interchangeable.
type Appointment struct {
	ID string `json:"id,omitempty"`

	Customer string `json:"usuario"`
	Date     string `json:"data"`    // DD/MM/YYYY
	Slot     string `json:"horario"` // HH:MM, drawn from the slot catalog
	Service  string `json:"servico"`
	Notes    string `json:"observacoes"`

	// Status is absent in ledgers written by the mobile app; empty means
	// scheduled.
	Status      string `json:"status,omitempty"`
	CancelledAt string `json:"cancelado_em,omitempty"`

	CreatedAt string `json:"data_criacao"` // DD/MM/YYYY HH:MM
}
