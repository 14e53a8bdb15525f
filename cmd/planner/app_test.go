package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"boothplan/internal/domain"
	"boothplan/internal/identity"
	"boothplan/internal/infra"
	"boothplan/internal/notify"
)

type memPayments struct {
	mu      sync.Mutex
	records map[string]*domain.EventPayment
	fail    error
}

func (m *memPayments) FindByEventAndUser(_ context.Context, eventID, userID string) (*domain.EventPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.records[eventID+"/"+userID]; ok {
		out := *p
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memPayments) Insert(_ context.Context, eventID, userID string, values domain.PaymentValues) (*domain.EventPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	p := &domain.EventPayment{ID: "pay-" + eventID, EventID: eventID, UserID: userID, TotalValue: values.TotalValue, ReceivedValue: values.ReceivedValue}
	m.records[eventID+"/"+userID] = p
	out := *p
	return &out, nil
}

func (m *memPayments) UpdateValues(_ context.Context, id string, values domain.PaymentValues) (*domain.EventPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	for _, p := range m.records {
		if p.ID == id {
			p.TotalValue, p.ReceivedValue = values.TotalValue, values.ReceivedValue
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memProfiles struct {
	profile *domain.Profile
	patches []domain.ProfilePatch
}

func (m *memProfiles) FindByUser(_ context.Context, userID string) (*domain.Profile, error) {
	if m.profile == nil || m.profile.UserID != userID {
		return nil, domain.ErrNotFound
	}
	p := m.profile.Clone()
	return &p, nil
}

func (m *memProfiles) Patch(_ context.Context, userID string, patch domain.ProfilePatch) error {
	if m.profile == nil || m.profile.UserID != userID {
		return domain.ErrNotFound
	}
	m.patches = append(m.patches, patch)
	patch.Apply(m.profile)
	return nil
}

func newTestApp(t *testing.T, userID string) (*app, *bytes.Buffer, *notify.Recorder) {
	t.Helper()
	out := &bytes.Buffer{}
	rec := &notify.Recorder{}
	session := identity.Session{}
	if userID != "" {
		session.User = &identity.User{ID: userID, Plan: "free"}
	}
	a := &app{
		cfg: &infra.Config{
			AppEnv:           "test",
			Locale:           language.BrazilianPortuguese,
			StateDir:         t.TempDir(),
			FreeContentLimit: 5,
			AccessWarnRatio:  0.8,
			TrialWarnDays:    3,
			RequestTimeout:   time.Second,
		},
		logger:   zerolog.Nop(),
		identity: identity.NewStatic(session),
		sink:     rec,
		out:      out,
		payments: &memPayments{records: map[string]*domain.EventPayment{}},
		profiles: &memProfiles{},
	}
	return a, out, rec
}

func TestContentAddListAndStats(t *testing.T) {
	a, out, _ := newTestApp(t, "u1")
	ctx := context.Background()

	require.NoError(t, a.run(ctx, "content", []string{"add", "-title", "Bastidores", "-type", "stories", "-date", "2026-11-02"}))
	require.NoError(t, a.run(ctx, "content", []string{"add", "-title", "Depoimento", "-status", "pronto", "-hashtags", "#cabine, #festa"}))
	out.Reset()

	require.NoError(t, a.run(ctx, "content", []string{"list"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Depoimento")
	assert.Contains(t, lines[1], "Bastidores")

	out.Reset()
	require.NoError(t, a.run(ctx, "content", []string{"list", "-date", "2026-11-02"}))
	assert.Contains(t, out.String(), "Bastidores")
	assert.NotContains(t, out.String(), "Depoimento")

	out.Reset()
	require.NoError(t, a.run(ctx, "content", []string{"stats"}))
	assert.Contains(t, out.String(), "ideia      1")
	assert.Contains(t, out.String(), "pronto     1")
	assert.Contains(t, out.String(), "total      2")
}

func TestContentAdvanceAndDelete(t *testing.T) {
	a, out, _ := newTestApp(t, "u1")
	ctx := context.Background()

	require.NoError(t, a.run(ctx, "content", []string{"add", "-title", "Reels da festa"}))
	id := strings.TrimSpace(strings.TrimPrefix(out.String(), "added "))
	require.NotEmpty(t, id)

	out.Reset()
	require.NoError(t, a.run(ctx, "content", []string{"advance", "-id", id}))
	assert.Equal(t, id+" is now producao\n", out.String())

	require.NoError(t, a.run(ctx, "content", []string{"status", "-id", id, "-to", "publicado"}))
	out.Reset()
	require.NoError(t, a.run(ctx, "content", []string{"list", "-status", "publicado"}))
	assert.Contains(t, out.String(), id)

	require.NoError(t, a.run(ctx, "content", []string{"delete", "-id", id}))
	out.Reset()
	require.NoError(t, a.run(ctx, "content", []string{"list"}))
	assert.Empty(t, out.String())
}

func TestContentRejectsUnknownStatus(t *testing.T) {
	a, _, _ := newTestApp(t, "u1")
	err := a.run(context.Background(), "content", []string{"add", "-title", "x", "-status", "arquivado"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestAccessUsesLocalPlanSize(t *testing.T) {
	a, out, _ := newTestApp(t, "u1")
	ctx := context.Background()
	for _, title := range []string{"a", "b", "c", "d"} {
		require.NoError(t, a.run(ctx, "content", []string{"add", "-title", title}))
	}
	out.Reset()

	require.NoError(t, a.run(ctx, "access", nil))
	assert.Contains(t, out.String(), "phase: warning")
	assert.Contains(t, out.String(), "4 de 5")
	assert.Contains(t, out.String(), "upgrade: available")

	out.Reset()
	require.NoError(t, a.run(ctx, "access", []string{"-dismissed"}))
	assert.NotContains(t, out.String(), "message:")
	assert.NotContains(t, out.String(), "upgrade:")
}

func TestAccessProShowsNothing(t *testing.T) {
	a, out, _ := newTestApp(t, "u1")
	require.NoError(t, a.run(context.Background(), "access", []string{"-plan", "pro"}))
	assert.Equal(t, "phase: pro\npro: true\n", out.String())
}

func TestPaymentSaveThenShow(t *testing.T) {
	a, out, rec := newTestApp(t, "u1")
	ctx := context.Background()

	require.NoError(t, a.run(ctx, "payment", []string{"-event", "ev1", "-total", "1000", "-received", "400"}))
	assert.Contains(t, out.String(), "status: pendente")
	assert.Equal(t, 1, rec.Count(notify.SeveritySuccess))

	out.Reset()
	require.NoError(t, a.run(ctx, "payment", []string{"-event", "ev1", "-received", "1000"}))
	assert.Contains(t, out.String(), "status: quitado")

	payments := a.payments.(*memPayments)
	require.Len(t, payments.records, 1)
	assert.Equal(t, 1000.0, payments.records["ev1/u1"].TotalValue)
}

func TestPaymentFailureIsReported(t *testing.T) {
	a, _, rec := newTestApp(t, "u1")
	a.payments.(*memPayments).fail = errors.New("connection reset")

	err := a.run(context.Background(), "payment", []string{"-event", "ev1", "-total", "10"})
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
	assert.Equal(t, 1, rec.Count(notify.SeverityError))
}

func TestPaymentWithoutIdentityIsSkipped(t *testing.T) {
	a, out, rec := newTestApp(t, "")
	require.NoError(t, a.run(context.Background(), "payment", []string{"-event", "ev1", "-total", "10"}))
	assert.Contains(t, out.String(), "not signed in")
	assert.Empty(t, rec.All())
}

func TestProfileUpdateSendsOnlySetFlags(t *testing.T) {
	a, out, rec := newTestApp(t, "u1")
	city := "Recife"
	profiles := a.profiles.(*memProfiles)
	profiles.profile = &domain.Profile{ID: "p1", UserID: "u1", City: &city, Services: []string{"cabine"}}

	require.NoError(t, a.run(context.Background(), "profile", []string{"-name", "Ana", "-events", "casamento, formatura"}))

	require.Len(t, profiles.patches, 1)
	patch := profiles.patches[0]
	assert.Nil(t, patch.City)
	assert.Nil(t, patch.Services)
	require.NotNil(t, patch.FullName)
	assert.Equal(t, "Ana", *patch.FullName)
	assert.Contains(t, out.String(), "city: Recife")
	assert.Contains(t, out.String(), "events: casamento, formatura")
	assert.Equal(t, 1, rec.Count(notify.SeveritySuccess))
}

func TestTourFlag(t *testing.T) {
	a, out, _ := newTestApp(t, "u1")
	ctx := context.Background()

	require.NoError(t, a.run(ctx, "tour", nil))
	assert.Equal(t, "tour dismissed: false\n", out.String())

	out.Reset()
	require.NoError(t, a.run(ctx, "tour", []string{"-dismiss"}))
	require.NoError(t, a.run(ctx, "tour", nil))
	assert.Equal(t, "tour dismissed: true\ntour dismissed: true\n", out.String())
}

func TestUnknownCommand(t *testing.T) {
	a, _, _ := newTestApp(t, "u1")
	assert.Error(t, a.run(context.Background(), "bogus", nil))
}
