// Command planner drives the content plan, event payments and profile of the
// signed-in operator from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"boothplan/internal/identity"
	"boothplan/internal/infra"
	"boothplan/internal/notify"
)

const usage = `usage: planner <command> [flags]

commands:
  access    show the access phase for the current subscription
  content   list, add, update and count planned content
  payment   show or save the payment of an event
  profile   show or update the business profile
  tour      show or dismiss the onboarding tour flag
`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("run_id", uuid.NewString()).Logger()

	session, err := identity.ParseToken(cfg.TokenSecret, cfg.Token)
	if err != nil {
		exitWithError(fmt.Errorf("PLANNER_TOKEN: %w", err))
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		identity: identity.NewStatic(session),
		out:      os.Stdout,
	}
	a.sink = notify.Multi(notify.NewLogSink(logger), printSink(a.out))
	defer a.close()

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		exitWithError(err)
	}
}

func printSink(w io.Writer) notify.Sink {
	return notify.Func(func(n notify.Notification) {
		fmt.Fprintf(w, "[%s] %s: %s\n", n.Severity, n.Title, n.Description)
	})
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
