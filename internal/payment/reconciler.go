// Package payment reconciles the payment ledger entry of the active event for
// the signed-in user.
package payment

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"boothplan/internal/domain"
	"boothplan/internal/identity"
	"boothplan/internal/notify"
)

var (
	savedNotice = notify.Notification{
		Title:       "Pagamento salvo",
		Description: "Os valores do evento foram atualizados.",
		Severity:    notify.SeveritySuccess,
	}
	saveFailedNotice = notify.Notification{
		Title:       "Erro ao salvar pagamento",
		Description: "Não foi possível salvar os valores. Tente novamente.",
		Severity:    notify.SeverityError,
	}
	fetchFailedNotice = notify.Notification{
		Title:       "Erro ao carregar pagamento",
		Description: "Não foi possível carregar os valores do evento.",
		Severity:    notify.SeverityError,
	}
	invalidNotice = notify.Notification{
		Title:       "Valores inválidos",
		Description: "O valor total e o valor recebido não podem ser negativos.",
		Severity:    notify.SeverityError,
	}
)

// Reconciler holds the ledger entry of one (event, user) pair at a time.
//
// Every fetch is tagged with a generation number. A completion whose
// generation is no longer current (the event or identity changed, or a newer
// fetch or save landed meanwhile) is dropped instead of overwriting fresher
// state.
//
// Save only writes once a fetch for the active (event, user) pair has
// succeeded, so a failed lookup can never turn into a second insert.
type Reconciler struct {
	repo     domain.EventPaymentRepository
	identity identity.Provider
	sink     notify.Sink
	logger   zerolog.Logger

	// saveMu serialises saves so a first save cannot insert twice.
	saveMu sync.Mutex

	mu      sync.RWMutex
	userID  string
	eventID string
	payment *domain.EventPayment
	loaded  bool
	gen     uint64
}

// NewReconciler wires a reconciler. The identity is read once here and again
// on every SyncIdentity call.
func NewReconciler(repo domain.EventPaymentRepository, provider identity.Provider, sink notify.Sink, logger zerolog.Logger) *Reconciler {
	if sink == nil {
		sink = notify.Discard
	}
	r := &Reconciler{
		repo:     repo,
		identity: provider,
		sink:     sink,
		logger:   logger.With().Str("component", "payment").Logger(),
	}
	if provider != nil {
		r.userID = provider.Current().UserID()
	}
	return r
}

// EventID returns the active event.
func (r *Reconciler) EventID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.eventID
}

// Payment returns a copy of the loaded record, or nil.
func (r *Reconciler) Payment() *domain.EventPayment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonePayment(r.payment)
}

// Status derives the settlement state of the loaded record.
func (r *Reconciler) Status() domain.PaymentStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payment.Status()
}

// PendingAmount is max(0, total-received), 0 without a record.
func (r *Reconciler) PendingAmount() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payment.PendingAmount()
}

// SetEvent switches the active event. Local state is cleared right away; an
// empty id stops there, any other id triggers a fetch.
func (r *Reconciler) SetEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	if eventID == r.eventID {
		r.mu.Unlock()
		return nil
	}
	r.eventID = eventID
	r.payment = nil
	r.loaded = false
	r.gen++
	r.mu.Unlock()

	if eventID == "" {
		return nil
	}
	return r.Fetch(ctx)
}

// SyncIdentity re-reads the identity provider and re-fetches when the user
// changed.
func (r *Reconciler) SyncIdentity(ctx context.Context) error {
	if r.identity == nil {
		return nil
	}
	userID := r.identity.Current().UserID()

	r.mu.Lock()
	if userID == r.userID {
		r.mu.Unlock()
		return nil
	}
	r.userID = userID
	r.payment = nil
	r.loaded = false
	r.gen++
	r.mu.Unlock()

	err := r.Fetch(ctx)
	if domain.IsSkipped(err) {
		return nil
	}
	return err
}

// Fetch loads the record of the active (event, user) pair. Without a user or
// an event it returns a skip error and leaves state untouched.
func (r *Reconciler) Fetch(ctx context.Context) error {
	r.mu.Lock()
	userID, eventID := r.userID, r.eventID
	if userID == "" {
		r.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	if eventID == "" {
		r.mu.Unlock()
		return domain.ErrNoEvent
	}
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	found, err := r.repo.FindByEventAndUser(ctx, eventID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		found, err = nil, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("event_id", eventID).Str("user_id", userID).Msg("fetch event payment failed")
		r.sink.Notify(fetchFailedNotice)
		return domain.Remote("fetch event payment", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		r.logger.Debug().Str("event_id", eventID).Msg("dropping stale event payment fetch")
		return nil
	}
	r.payment = clonePayment(found)
	r.loaded = true
	return nil
}

// Save writes total and received for the active event: an update when a
// record is loaded, otherwise an insert. On failure local state is kept, a
// failure notification is sent and a nil record is returned.
func (r *Reconciler) Save(ctx context.Context, values domain.PaymentValues) (*domain.EventPayment, error) {
	if err := values.Validate(); err != nil {
		r.sink.Notify(invalidNotice)
		return nil, err
	}

	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	r.mu.RLock()
	userID, eventID := r.userID, r.eventID
	current := clonePayment(r.payment)
	loaded := r.loaded
	r.mu.RUnlock()

	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if eventID == "" {
		return nil, domain.ErrNoEvent
	}
	if !loaded {
		return nil, domain.ErrNotLoaded
	}

	var (
		saved *domain.EventPayment
		err   error
	)
	if current != nil {
		saved, err = r.repo.UpdateValues(ctx, current.ID, values)
	} else {
		saved, err = r.repo.Insert(ctx, eventID, userID, values)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("event_id", eventID).Str("user_id", userID).Bool("insert", current == nil).Msg("save event payment failed")
		r.sink.Notify(saveFailedNotice)
		return nil, domain.Remote("save event payment", err)
	}

	r.mu.Lock()
	if r.userID == userID && r.eventID == eventID {
		r.payment = clonePayment(saved)
		r.loaded = true
		r.gen++
	}
	r.mu.Unlock()

	r.sink.Notify(savedNotice)
	return clonePayment(saved), nil
}

func clonePayment(p *domain.EventPayment) *domain.EventPayment {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}
