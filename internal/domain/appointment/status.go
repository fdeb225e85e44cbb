package appointment

// ===============================
// Payment Status
// ===============================

// Status is a label the professional sets by hand. It is never derived from
// price and deposit.
type Status string

const (
	StatusPending Status = "Pendente"
	StatusPartial Status = "Parcial"
	StatusPaid    Status = "Pago"
)

// InitialStatus é o status de um novo agendamento.
func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPartial, StatusPaid:
		return true
	}
	return false
}
