package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"boothplan/internal/domain"
	"boothplan/internal/payment"
)

func (a *app) paymentCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payment", flag.ContinueOnError)
	fs.SetOutput(a.out)
	eventFlag := fs.String("event", "", "event id")
	totalFlag := fs.Float64("total", 0, "total value of the event")
	receivedFlag := fs.Float64("received", 0, "value received so far")
	if err := fs.Parse(args); err != nil {
		return err
	}
	eventID := strings.TrimSpace(*eventFlag)
	if eventID == "" {
		return errors.New("-event is required")
	}

	saving := isSet(fs, "total") || isSet(fs, "received")

	if !a.identity.Current().Authenticated() {
		fmt.Fprintln(a.out, "not signed in; set PLANNER_TOKEN")
		return nil
	}
	if err := a.connect(ctx); err != nil {
		return err
	}

	reconciler := payment.NewReconciler(a.payments, a.identity, a.sink, a.logger)

	fetchCtx, cancel := a.withTimeout(ctx)
	err := reconciler.SetEvent(fetchCtx, eventID)
	cancel()
	if err != nil && !domain.IsSkipped(err) {
		return err
	}

	if saving {
		values := domain.PaymentValues{TotalValue: *totalFlag, ReceivedValue: *receivedFlag}
		if current := reconciler.Payment(); current != nil {
			if !isSet(fs, "total") {
				values.TotalValue = current.TotalValue
			}
			if !isSet(fs, "received") {
				values.ReceivedValue = current.ReceivedValue
			}
		}
		saveCtx, cancel := a.withTimeout(ctx)
		_, err := reconciler.Save(saveCtx, values)
		cancel()
		if domain.IsSkipped(err) {
			fmt.Fprintf(a.out, "save skipped: %v\n", err)
		} else if err != nil {
			return err
		}
	}

	a.printPayment(eventID, reconciler.Summary(a.cfg.Locale))
	return nil
}

func (a *app) printPayment(eventID string, s payment.Summary) {
	fmt.Fprintf(a.out, "event: %s\n", eventID)
	if !s.HasRecord {
		fmt.Fprintln(a.out, "record: none")
	}
	fmt.Fprintf(a.out, "status: %s\ntotal: %s\nreceived: %s\npending: %s\n",
		s.Status, s.TotalText, s.ReceivedText, s.PendingText)
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
