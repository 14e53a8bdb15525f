package access

import "sync"

// Banner tracks whether the current evaluation should be rendered. Dismissal
// lives only as long as the Banner value.
type Banner struct {
	mu        sync.Mutex
	eval      Evaluation
	dismissed bool
}

// NewBanner wraps an evaluation.
func NewBanner(eval Evaluation) *Banner {
	return &Banner{eval: eval}
}

// Evaluation returns the wrapped evaluation.
func (b *Banner) Evaluation() Evaluation {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.eval
}

// Refresh swaps in a new evaluation. A dismissal stays in effect.
func (b *Banner) Refresh(eval Evaluation) {
	b.mu.Lock()
	b.eval = eval
	b.mu.Unlock()
}

// Dismiss hides the banner for the rest of the session.
func (b *Banner) Dismiss() {
	b.mu.Lock()
	b.dismissed = true
	b.mu.Unlock()
}

// Visible is false for pro users, after a dismissal, or without a message.
func (b *Banner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.eval.IsPro && !b.dismissed && b.eval.Message != ""
}

// OffersUpgrade is only true for a visible warning.
func (b *Banner) OffersUpgrade() bool {
	return b.Visible() && b.Evaluation().OffersUpgrade()
}
