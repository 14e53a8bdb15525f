package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"boothplan/internal/domain"
	"boothplan/internal/infra"
	"boothplan/internal/sqlinline"
)

// EventPaymentRepositoryPG implements domain.EventPaymentRepository backed by PostgreSQL.
type EventPaymentRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewEventPaymentRepository creates a new EventPaymentRepositoryPG.
func NewEventPaymentRepository(sql infra.SQLExecutor) *EventPaymentRepositoryPG {
	return &EventPaymentRepositoryPG{sql: sql}
}

// FindByEventAndUser fetches the ledger entry of one (event, user) pair.
func (r *EventPaymentRepositoryPG) FindByEventAndUser(ctx context.Context, eventID, userID string) (*domain.EventPayment, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectEventPayment, eventID, userID)
	return scanEventPayment(row)
}

// Insert creates the ledger entry for an (event, user) pair.
func (r *EventPaymentRepositoryPG) Insert(ctx context.Context, eventID, userID string, values domain.PaymentValues) (*domain.EventPayment, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertEventPayment, eventID, userID, values.TotalValue, values.ReceivedValue)
	return scanEventPayment(row)
}

// UpdateValues overwrites total_value and received_value of an existing entry.
func (r *EventPaymentRepositoryPG) UpdateValues(ctx context.Context, id string, values domain.PaymentValues) (*domain.EventPayment, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateEventPaymentValues, id, values.TotalValue, values.ReceivedValue)
	return scanEventPayment(row)
}

func scanEventPayment(row pgx.Row) (*domain.EventPayment, error) {
	var p domain.EventPayment
	if err := row.Scan(&p.ID, &p.EventID, &p.UserID, &p.TotalValue, &p.ReceivedValue, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ domain.EventPaymentRepository = (*EventPaymentRepositoryPG)(nil)
