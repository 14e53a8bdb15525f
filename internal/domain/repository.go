package domain

import "context"

// EventPaymentRepository persists the event_payments relation.
type EventPaymentRepository interface {
	FindByEventAndUser(ctx context.Context, eventID, userID string) (*EventPayment, error)
	Insert(ctx context.Context, eventID, userID string, values PaymentValues) (*EventPayment, error)
	UpdateValues(ctx context.Context, id string, values PaymentValues) (*EventPayment, error)
}

// ProfileRepository persists the profiles relation.
type ProfileRepository interface {
	FindByUser(ctx context.Context, userID string) (*Profile, error)
	Patch(ctx context.Context, userID string, patch ProfilePatch) error
}
