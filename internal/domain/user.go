package domain

import "time"

// UserPlan enumerates billing plans.
type UserPlan string

const (
	UserPlanFree  UserPlan = "free"
	UserPlanTrial UserPlan = "trial"
	UserPlanPro   UserPlan = "pro"
)

// Subscription is the caller's plan and usage as seen by the access evaluator.
type Subscription struct {
	Plan         UserPlan
	TrialEndsAt  *time.Time
	ContentUsed  int
	ContentLimit int
}

// IsPro reports whether the plan grants unrestricted access.
func (s Subscription) IsPro() bool {
	return s.Plan == UserPlanPro
}
