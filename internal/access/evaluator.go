// Package access classifies the caller's subscription into an access phase
// and renders the matching user-facing message.
package access

import (
	"math"
	"time"

	"golang.org/x/text/language"

	"boothplan/internal/domain"
)

// Phase is the access classification of the current subscription.
type Phase string

const (
	PhaseAdvisory Phase = "advisory"
	PhaseWarning  Phase = "warning"
	PhasePro      Phase = "pro"
)

// Policy tunes when the evaluator escalates from advisory to warning.
type Policy struct {
	// WarnRatio is the share of the free limit that triggers a warning.
	WarnRatio float64
	// TrialWarnDays is how close to the trial end a warning starts.
	TrialWarnDays int
	Locale        language.Tag
}

// DefaultPolicy matches the production defaults.
func DefaultPolicy() Policy {
	return Policy{WarnRatio: 0.8, TrialWarnDays: 3, Locale: language.BrazilianPortuguese}
}

// Evaluation is the outcome rendered by banners and limit cards.
type Evaluation struct {
	Phase   Phase
	Message string
	IsPro   bool
}

// OffersUpgrade reports whether an upgrade call to action may be shown.
func (e Evaluation) OffersUpgrade() bool {
	return !e.IsPro && e.Phase == PhaseWarning
}

// Evaluator is a pure function of subscription state and time.
type Evaluator struct {
	policy Policy
	now    func() time.Time
}

// NewEvaluator builds an evaluator. Zero policy fields fall back to defaults.
func NewEvaluator(policy Policy) *Evaluator {
	def := DefaultPolicy()
	if policy.WarnRatio <= 0 || policy.WarnRatio > 1 {
		policy.WarnRatio = def.WarnRatio
	}
	if policy.TrialWarnDays <= 0 {
		policy.TrialWarnDays = def.TrialWarnDays
	}
	if policy.Locale == language.Und {
		policy.Locale = def.Locale
	}
	return &Evaluator{policy: policy, now: time.Now}
}

// Evaluate classifies sub at the current time.
func (e *Evaluator) Evaluate(sub domain.Subscription) Evaluation {
	return e.EvaluateAt(sub, e.now())
}

// EvaluateAt classifies sub at now.
func (e *Evaluator) EvaluateAt(sub domain.Subscription, now time.Time) Evaluation {
	if sub.IsPro() {
		return Evaluation{Phase: PhasePro, IsPro: true}
	}
	p := printer(e.policy.Locale)

	if sub.Plan == domain.UserPlanTrial && sub.TrialEndsAt != nil {
		days := daysLeft(now, *sub.TrialEndsAt)
		switch {
		case now.After(*sub.TrialEndsAt):
			return Evaluation{Phase: PhaseWarning, Message: p.Sprintf(msgTrialEnded)}
		case days <= e.policy.TrialWarnDays:
			return Evaluation{Phase: PhaseWarning, Message: p.Sprintf(msgTrialEndsSoon, days)}
		default:
			return Evaluation{Phase: PhaseAdvisory, Message: p.Sprintf(msgTrialDaysLeft, days)}
		}
	}

	if sub.ContentLimit <= 0 {
		return Evaluation{Phase: PhaseAdvisory, Message: p.Sprintf(msgFreeUnmetered)}
	}
	used := sub.ContentUsed
	if used < 0 {
		used = 0
	}
	if float64(used) >= e.policy.WarnRatio*float64(sub.ContentLimit) {
		return Evaluation{Phase: PhaseWarning, Message: p.Sprintf(msgFreeNearLimit, used, sub.ContentLimit)}
	}
	return Evaluation{Phase: PhaseAdvisory, Message: p.Sprintf(msgFreeUsage, used, sub.ContentLimit)}
}

// daysLeft rounds the remaining time up to whole days.
func daysLeft(now, end time.Time) int {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}
