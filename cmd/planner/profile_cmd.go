package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"boothplan/internal/domain"
	"boothplan/internal/profile"
)

func (a *app) profileCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "full name")
	city := fs.String("city", "", "city")
	services := fs.String("services", "", "comma separated services")
	events := fs.String("events", "", "comma separated event types")
	brandStyle := fs.String("brand-style", "", "brand style")
	postFrequency := fs.String("post-frequency", "", "posting frequency")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var patch domain.ProfilePatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.FullName = name
		case "city":
			patch.City = city
		case "services":
			list := splitList(*services)
			patch.Services = &list
		case "events":
			list := splitList(*events)
			patch.Events = &list
		case "brand-style":
			patch.BrandStyle = brandStyle
		case "post-frequency":
			patch.PostFrequency = postFrequency
		}
	})

	if !a.identity.Current().Authenticated() {
		fmt.Fprintln(a.out, "not signed in; set PLANNER_TOKEN")
		return nil
	}
	if err := a.connect(ctx); err != nil {
		return err
	}

	store := profile.NewStore(a.profiles, a.identity, a.sink, a.logger)

	fetchCtx, cancel := a.withTimeout(ctx)
	err := store.Fetch(fetchCtx)
	cancel()
	if err != nil && !domain.IsSkipped(err) {
		return err
	}

	if !patch.Empty() {
		if store.Profile() == nil {
			fmt.Fprintln(a.out, "no profile to update")
			return nil
		}
		updateCtx, cancel := a.withTimeout(ctx)
		err := store.Update(updateCtx, patch)
		cancel()
		if err != nil && !domain.IsSkipped(err) {
			return err
		}
	}

	a.printProfile(store.Profile())
	return nil
}

func (a *app) printProfile(p *domain.Profile) {
	if p == nil {
		fmt.Fprintln(a.out, "profile: none")
		return
	}
	fmt.Fprintf(a.out, "name: %s\ncity: %s\nservices: %s\nevents: %s\nbrand style: %s\npost frequency: %s\n",
		orDash(p.FullName), orDash(p.City),
		strings.Join(p.Services, ", "), strings.Join(p.Events, ", "),
		orDash(p.BrandStyle), orDash(p.PostFrequency))
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
