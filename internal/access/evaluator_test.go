package access

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"boothplan/internal/domain"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestEvaluatePhases(t *testing.T) {
	ev := NewEvaluator(Policy{Locale: language.English})

	tests := []struct {
		name      string
		sub       domain.Subscription
		phase     Phase
		isPro     bool
		upgrade   bool
		messageIn string
	}{
		{
			name:  "pro has no message",
			sub:   domain.Subscription{Plan: domain.UserPlanPro, ContentUsed: 999, ContentLimit: 10},
			phase: PhasePro,
			isPro: true,
		},
		{
			name:      "trial far from the end is advisory",
			sub:       domain.Subscription{Plan: domain.UserPlanTrial, TrialEndsAt: at(6 * 24 * time.Hour)},
			phase:     PhaseAdvisory,
			messageIn: "6 days left",
		},
		{
			name:      "trial one day left is singular",
			sub:       domain.Subscription{Plan: domain.UserPlanTrial, TrialEndsAt: at(20 * time.Hour)},
			phase:     PhaseWarning,
			upgrade:   true,
			messageIn: "ends tomorrow",
		},
		{
			name:      "trial near the end warns",
			sub:       domain.Subscription{Plan: domain.UserPlanTrial, TrialEndsAt: at(3 * 24 * time.Hour)},
			phase:     PhaseWarning,
			upgrade:   true,
			messageIn: "ends in 3 days",
		},
		{
			name:      "expired trial warns",
			sub:       domain.Subscription{Plan: domain.UserPlanTrial, TrialEndsAt: at(-time.Hour)},
			phase:     PhaseWarning,
			upgrade:   true,
			messageIn: "has ended",
		},
		{
			name:      "free below threshold is advisory",
			sub:       domain.Subscription{Plan: domain.UserPlanFree, ContentUsed: 5, ContentLimit: 30},
			phase:     PhaseAdvisory,
			messageIn: "5 of 30",
		},
		{
			name:      "free at threshold warns",
			sub:       domain.Subscription{Plan: domain.UserPlanFree, ContentUsed: 24, ContentLimit: 30},
			phase:     PhaseWarning,
			upgrade:   true,
			messageIn: "24 of 30",
		},
		{
			name:      "free without a limit is advisory",
			sub:       domain.Subscription{Plan: domain.UserPlanFree},
			phase:     PhaseAdvisory,
			messageIn: "free plan",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ev.EvaluateAt(tc.sub, now)
			if got.Phase != tc.phase {
				t.Fatalf("phase = %q, want %q", got.Phase, tc.phase)
			}
			if got.IsPro != tc.isPro {
				t.Fatalf("isPro = %v, want %v", got.IsPro, tc.isPro)
			}
			if got.OffersUpgrade() != tc.upgrade {
				t.Fatalf("OffersUpgrade() = %v, want %v", got.OffersUpgrade(), tc.upgrade)
			}
			if tc.isPro && got.Message != "" {
				t.Fatalf("pro evaluation must not carry a message, got %q", got.Message)
			}
			if !strings.Contains(got.Message, tc.messageIn) {
				t.Fatalf("message %q does not contain %q", got.Message, tc.messageIn)
			}
		})
	}
}

func TestEvaluateOnlyWarningOffersUpgrade(t *testing.T) {
	ev := NewEvaluator(Policy{})
	for used := 0; used <= 40; used++ {
		for _, plan := range []domain.UserPlan{domain.UserPlanFree, domain.UserPlanPro} {
			got := ev.EvaluateAt(domain.Subscription{Plan: plan, ContentUsed: used, ContentLimit: 30}, now)
			if got.Phase != PhaseWarning && got.OffersUpgrade() {
				t.Fatalf("phase %q offered an upgrade (plan=%s used=%d)", got.Phase, plan, used)
			}
			if got.IsPro && got.Message != "" {
				t.Fatalf("pro evaluation carried message %q", got.Message)
			}
		}
	}
}

func TestEvaluateDefaultsToPortuguese(t *testing.T) {
	got := NewEvaluator(Policy{}).EvaluateAt(domain.Subscription{Plan: domain.UserPlanFree, ContentUsed: 2, ContentLimit: 30}, now)
	if got.Message != "Você usou 2 de 30 conteúdos do plano gratuito." {
		t.Fatalf("unexpected message %q", got.Message)
	}

	got = NewEvaluator(Policy{}).EvaluateAt(domain.Subscription{Plan: domain.UserPlanTrial, TrialEndsAt: at(24 * time.Hour)}, now)
	if got.Message != "Seu teste termina amanhã. Assine o Pro para continuar planejando." {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestBannerVisibility(t *testing.T) {
	warning := Evaluation{Phase: PhaseWarning, Message: "near the limit"}

	b := NewBanner(warning)
	if !b.Visible() || !b.OffersUpgrade() {
		t.Fatalf("warning banner should be visible with an upgrade")
	}

	b.Dismiss()
	if b.Visible() || b.OffersUpgrade() {
		t.Fatalf("dismissed banner should be hidden")
	}
	b.Refresh(Evaluation{Phase: PhaseAdvisory, Message: "still here"})
	if b.Visible() {
		t.Fatalf("dismissal should survive a refresh")
	}

	if NewBanner(Evaluation{Phase: PhasePro, IsPro: true}).Visible() {
		t.Fatalf("pro banner should never be visible")
	}
	if NewBanner(Evaluation{Phase: PhaseAdvisory}).Visible() {
		t.Fatalf("banner without a message should be hidden")
	}
	advisory := NewBanner(Evaluation{Phase: PhaseAdvisory, Message: "fyi"})
	if !advisory.Visible() || advisory.OffersUpgrade() {
		t.Fatalf("advisory banner should be visible without an upgrade")
	}
}
