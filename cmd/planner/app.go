package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"boothplan/internal/adapter/repo"
	"boothplan/internal/domain"
	"boothplan/internal/identity"
	"boothplan/internal/infra"
	"boothplan/internal/notify"
	"boothplan/internal/session"
	"boothplan/internal/storage"
)

type app struct {
	cfg      *infra.Config
	logger   zerolog.Logger
	identity *identity.Static
	sink     notify.Sink
	out      io.Writer

	pool     *pgxpool.Pool
	payments domain.EventPaymentRepository
	profiles domain.ProfileRepository
}

// run dispatches cmd and logs how it went.
func (a *app) run(ctx context.Context, cmd string, args []string) error {
	start := time.Now()
	err := a.dispatch(ctx, cmd, args)
	ev := a.logger.Info()
	if err != nil {
		ev = a.logger.Warn().Err(err)
	}
	ev.Str("command", cmd).Dur("took", time.Since(start)).Msg("command finished")
	return err
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "access":
		return a.accessCmd(ctx, args)
	case "content":
		return a.contentCmd(ctx, args)
	case "payment":
		return a.paymentCmd(ctx, args)
	case "profile":
		return a.profileCmd(ctx, args)
	case "tour":
		return a.tourCmd(ctx, args)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
}

func (a *app) state() (*storage.FileStore, error) {
	return storage.NewFileStore(a.cfg.StateDir)
}

func (a *app) flags() (*session.FlagStore, error) {
	files, err := a.state()
	if err != nil {
		return nil, err
	}
	return session.NewFlagStore(files), nil
}

// connect opens the database pool on first use and builds the repositories.
func (a *app) connect(ctx context.Context) error {
	if a.payments != nil && a.profiles != nil {
		return nil
	}
	pool, err := infra.NewDBPool(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.pool = pool
	runner := infra.NewSQLRunner(pool, a.logger)
	a.payments = repo.NewEventPaymentRepository(runner)
	a.profiles = repo.NewProfileRepository(runner)
	return nil
}

func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.RequestTimeout)
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
