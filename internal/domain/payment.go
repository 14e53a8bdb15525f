package domain

import "time"

// PaymentStatus is the derived settlement state of an event ledger entry.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusQuitado  PaymentStatus = "quitado"
)

// EventPayment is the ledger entry for one (event, user) pair.
type EventPayment struct {
	ID            string
	EventID       string
	UserID        string
	TotalValue    float64
	ReceivedValue float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Status reports quitado once the received value covers the total.
func (p *EventPayment) Status() PaymentStatus {
	if p == nil || p.ReceivedValue < p.TotalValue {
		return PaymentStatusPendente
	}
	return PaymentStatusQuitado
}

// PendingAmount is what is still owed, never negative.
func (p *EventPayment) PendingAmount() float64 {
	if p == nil {
		return 0
	}
	if pending := p.TotalValue - p.ReceivedValue; pending > 0 {
		return pending
	}
	return 0
}

// PaymentValues is the pair written by a save.
type PaymentValues struct {
	TotalValue    float64
	ReceivedValue float64
}

// Validate rejects negative amounts.
func (v PaymentValues) Validate() error {
	if v.TotalValue < 0 || v.ReceivedValue < 0 {
		return ErrInvalidAmount
	}
	return nil
}
