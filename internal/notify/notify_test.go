package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogSinkWritesSeverityAndTitle(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	sink.Notify(Notification{Title: "Erro", Description: "falhou", Severity: SeverityError})

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"severity":"error"`, `"title":"Erro"`, `"message":"falhou"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %s", out, want)
		}
	}
}

func TestMultiFansOut(t *testing.T) {
	var a, b Recorder
	sink := Multi(&a, nil, &b)

	sink.Notify(Notification{Title: "ok", Severity: SeveritySuccess})

	if a.Count(SeveritySuccess) != 1 || b.Count(SeveritySuccess) != 1 {
		t.Fatalf("expected one notification per recorder, got %d and %d", a.Count(SeveritySuccess), b.Count(SeveritySuccess))
	}
}

func TestDiscardIsSafe(t *testing.T) {
	Discard.Notify(Notification{Title: "ignored"})
}
