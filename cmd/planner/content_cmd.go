package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"
	"time"

	"boothplan/internal/content"
	"boothplan/internal/domain"
)

func (a *app) contentCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: planner content <list|add|update|status|advance|delete|stats> [flags]")
	}
	files, err := a.state()
	if err != nil {
		return err
	}
	store, err := content.Load(ctx, files, content.PlanKey)
	if err != nil {
		return err
	}

	sub, rest := args[0], args[1:]
	mutated := true
	switch sub {
	case "list":
		mutated = false
		err = a.contentList(store, rest)
	case "add":
		err = a.contentAdd(store, rest)
	case "update":
		err = a.contentUpdate(store, rest)
	case "status":
		err = a.contentStatus(store, rest)
	case "advance":
		err = a.contentAdvance(store, rest)
	case "delete":
		err = a.contentDelete(store, rest)
	case "stats":
		mutated = false
		a.printStats(store.Stats())
	default:
		return fmt.Errorf("unknown content command %q", sub)
	}
	if err != nil || !mutated {
		return err
	}
	return store.Save(ctx, files, content.PlanKey)
}

func (a *app) contentList(store *content.Store, args []string) error {
	fs := flag.NewFlagSet("content list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	statusFlag := fs.String("status", "", "only items in this status")
	dateFlag := fs.String("date", "", "only items scheduled on this day (YYYY-MM-DD)")
	typeFlag := fs.String("type", "", "only items of this format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seq := slices.Values(store.Items())
	switch {
	case *statusFlag != "":
		status, err := domain.ParseContentStatus(*statusFlag)
		if err != nil {
			return err
		}
		seq = store.ByStatus(status)
	case *dateFlag != "":
		day, err := parseDay(*dateFlag)
		if err != nil {
			return err
		}
		seq = store.ByDate(day)
	case *typeFlag != "":
		t, err := domain.ParseContentType(*typeFlag)
		if err != nil {
			return err
		}
		seq = store.ByType(t)
	}

	for item := range seq {
		fmt.Fprintf(a.out, "%s  %-10s %-9s %s  %s\n", item.ID, item.Status, item.Type, item.ScheduledDate.Format(time.DateOnly), item.Title)
	}
	return nil
}

// contentFields registers the editable item fields on fs.
type contentFields struct {
	title, typ, status, objective, date, eventType, script, caption, cta, hashtags *string
}

func registerContentFields(fs *flag.FlagSet) contentFields {
	return contentFields{
		title:     fs.String("title", "", "title"),
		typ:       fs.String("type", "", "format (reels, carrossel, stories)"),
		status:    fs.String("status", "", "status (ideia, producao, pronto, publicado)"),
		objective: fs.String("objective", "", "objective"),
		date:      fs.String("date", "", "scheduled day (YYYY-MM-DD)"),
		eventType: fs.String("event-type", "", "event type label"),
		script:    fs.String("script", "", "script"),
		caption:   fs.String("caption", "", "caption"),
		cta:       fs.String("cta", "", "call to action"),
		hashtags:  fs.String("hashtags", "", "comma separated hashtags"),
	}
}

// patch builds a ContentPatch from the flags that were set on the command line.
func (f contentFields) patch(fs *flag.FlagSet) (domain.ContentPatch, error) {
	var (
		p       domain.ContentPatch
		err     error
		setErrs []error
	)
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			p.Title = f.title
		case "type":
			var t domain.ContentType
			if t, err = domain.ParseContentType(*f.typ); err != nil {
				setErrs = append(setErrs, err)
				return
			}
			p.Type = &t
		case "status":
			var s domain.ContentStatus
			if s, err = domain.ParseContentStatus(*f.status); err != nil {
				setErrs = append(setErrs, err)
				return
			}
			p.Status = &s
		case "objective":
			p.Objective = f.objective
		case "date":
			var d time.Time
			if d, err = parseDay(*f.date); err != nil {
				setErrs = append(setErrs, err)
				return
			}
			p.ScheduledDate = &d
		case "event-type":
			p.EventType = f.eventType
		case "script":
			p.Script = f.script
		case "caption":
			p.Caption = f.caption
		case "cta":
			p.CTA = f.cta
		case "hashtags":
			tags := splitList(*f.hashtags)
			p.Hashtags = &tags
		}
	})
	return p, errors.Join(setErrs...)
}

func (a *app) contentAdd(store *content.Store, args []string) error {
	fs := flag.NewFlagSet("content add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fields := registerContentFields(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*fields.title) == "" {
		return errors.New("-title is required")
	}
	p, err := fields.patch(fs)
	if err != nil {
		return err
	}

	draft := domain.ContentDraft{Title: *fields.title, Type: domain.ContentTypeReels, Status: domain.ContentStatusIdeia}
	if p.Type != nil {
		draft.Type = *p.Type
	}
	if p.Status != nil {
		draft.Status = *p.Status
	}
	if p.Objective != nil {
		draft.Objective = *p.Objective
	}
	if p.ScheduledDate != nil {
		draft.ScheduledDate = *p.ScheduledDate
	}
	if p.EventType != nil {
		draft.EventType = *p.EventType
	}
	if p.Hashtags != nil {
		draft.Hashtags = *p.Hashtags
	}
	draft.Script, draft.Caption, draft.CTA = p.Script, p.Caption, p.CTA

	item := store.Add(draft)
	fmt.Fprintf(a.out, "added %s\n", item.ID)
	return nil
}

func (a *app) contentUpdate(store *content.Store, args []string) error {
	fs := flag.NewFlagSet("content update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "item id")
	fields := registerContentFields(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := fields.patch(fs)
	if err != nil {
		return err
	}
	return store.Update(*id, p)
}

func (a *app) contentStatus(store *content.Store, args []string) error {
	fs := flag.NewFlagSet("content status", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "item id")
	statusFlag := fs.String("to", "", "new status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	status, err := domain.ParseContentStatus(*statusFlag)
	if err != nil {
		return err
	}
	return store.UpdateStatus(*id, status)
}

func (a *app) contentAdvance(store *content.Store, args []string) error {
	fs := flag.NewFlagSet("content advance", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "item id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if item, ok := store.Advance(*id); ok {
		fmt.Fprintf(a.out, "%s is now %s\n", item.ID, item.Status)
	}
	return nil
}

func (a *app) contentDelete(store *content.Store, args []string) error {
	fs := flag.NewFlagSet("content delete", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "item id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	store.Delete(*id)
	return nil
}

func (a *app) printStats(stats domain.ContentStats) {
	for _, status := range domain.ContentStatuses {
		fmt.Fprintf(a.out, "%-10s %d\n", status, stats.Count(status))
	}
	fmt.Fprintf(a.out, "%-10s %d\n", "total", stats.Total)
}

func parseDay(raw string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
