package main

import (
	"context"
	"flag"
	"fmt"
)

func (a *app) tourCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tour", flag.ContinueOnError)
	fs.SetOutput(a.out)
	dismiss := fs.Bool("dismiss", false, "mark the onboarding tour as dismissed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	flags, err := a.flags()
	if err != nil {
		return err
	}
	if *dismiss {
		if err := flags.DismissTour(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.out, "tour dismissed: %t\n", flags.TourDismissed(ctx))
	return nil
}
