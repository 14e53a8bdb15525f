package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"boothplan/internal/access"
	"boothplan/internal/content"
	"boothplan/internal/domain"
)

func (a *app) accessCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("access", flag.ContinueOnError)
	fs.SetOutput(a.out)
	planFlag := fs.String("plan", "", "plan to evaluate (free, trial, pro); defaults to the token plan")
	usedFlag := fs.Int("used", -1, "content items used; defaults to the size of the local plan")
	limitFlag := fs.Int("limit", a.cfg.FreeContentLimit, "content items allowed on the free plan")
	trialFlag := fs.String("trial-ends", "", "trial end date (YYYY-MM-DD)")
	dismissFlag := fs.Bool("dismissed", false, "treat the banner as dismissed for this session")
	if err := fs.Parse(args); err != nil {
		return err
	}

	plan := strings.ToLower(strings.TrimSpace(*planFlag))
	if plan == "" {
		if u := a.identity.Current().User; u != nil && u.Plan != "" {
			plan = u.Plan
		} else {
			plan = string(domain.UserPlanFree)
		}
	}
	sub := domain.Subscription{Plan: domain.UserPlan(plan), ContentUsed: *usedFlag, ContentLimit: *limitFlag}
	switch sub.Plan {
	case domain.UserPlanFree, domain.UserPlanTrial, domain.UserPlanPro:
	default:
		return fmt.Errorf("unsupported plan %q", plan)
	}

	if *trialFlag != "" {
		end, err := time.ParseInLocation(time.DateOnly, *trialFlag, time.Local)
		if err != nil {
			return fmt.Errorf("-trial-ends: %w", err)
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		sub.TrialEndsAt = &end
	}
	if sub.ContentUsed < 0 {
		files, err := a.state()
		if err != nil {
			return err
		}
		store, err := content.Load(ctx, files, content.PlanKey)
		if err != nil {
			return err
		}
		sub.ContentUsed = store.Len()
	}

	evaluator := access.NewEvaluator(access.Policy{
		WarnRatio:     a.cfg.AccessWarnRatio,
		TrialWarnDays: a.cfg.TrialWarnDays,
		Locale:        a.cfg.Locale,
	})
	banner := access.NewBanner(evaluator.Evaluate(sub))
	if *dismissFlag {
		banner.Dismiss()
	}

	eval := banner.Evaluation()
	fmt.Fprintf(a.out, "phase: %s\npro: %t\n", eval.Phase, eval.IsPro)
	if banner.Visible() {
		fmt.Fprintf(a.out, "message: %s\n", eval.Message)
	}
	if banner.OffersUpgrade() {
		fmt.Fprintln(a.out, "upgrade: available")
	}
	return nil
}
