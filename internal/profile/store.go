// Package profile caches the signed-in user's business profile and applies
// partial updates to it.
package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"boothplan/internal/domain"
	"boothplan/internal/identity"
	"boothplan/internal/notify"
)

var (
	updatedNotice = notify.Notification{
		Title:       "Perfil atualizado",
		Description: "Suas informações foram salvas.",
		Severity:    notify.SeveritySuccess,
	}
	fetchFailedNotice = notify.Notification{
		Title:       "Erro ao carregar perfil",
		Description: "Não foi possível carregar suas informações.",
		Severity:    notify.SeverityError,
	}
	updateFailedNotice = notify.Notification{
		Title:       "Erro ao atualizar perfil",
		Description: "Não foi possível salvar suas informações. Tente novamente.",
		Severity:    notify.SeverityError,
	}
)

// Store holds the profile of the current identity.
type Store struct {
	repo     domain.ProfileRepository
	identity identity.Provider
	sink     notify.Sink
	logger   zerolog.Logger

	mu      sync.RWMutex
	profile *domain.Profile
}

// NewStore wires a profile store.
func NewStore(repo domain.ProfileRepository, provider identity.Provider, sink notify.Sink, logger zerolog.Logger) *Store {
	if sink == nil {
		sink = notify.Discard
	}
	return &Store{
		repo:     repo,
		identity: provider,
		sink:     sink,
		logger:   logger.With().Str("component", "profile").Logger(),
	}
}

// Profile returns a copy of the loaded profile, or nil.
func (s *Store) Profile() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := s.profile.Clone()
	return &p
}

// Fetch loads the profile of the current identity. Without an identity the
// local state is cleared and no query is made.
func (s *Store) Fetch(ctx context.Context) error {
	userID := s.userID()
	if userID == "" {
		s.set(nil)
		return domain.ErrNotAuthenticated
	}

	found, err := s.repo.FindByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		s.set(nil)
		return nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("fetch profile failed")
		s.sink.Notify(fetchFailedNotice)
		return domain.Remote("fetch profile", err)
	}
	normalize(found)
	s.set(found)
	return nil
}

// Update sends only the fields present in patch and merges them locally once
// the remote store accepts them.
func (s *Store) Update(ctx context.Context, patch domain.ProfilePatch) error {
	userID := s.userID()
	if userID == "" {
		return domain.ErrNotAuthenticated
	}
	if patch.Empty() {
		return nil
	}

	if err := s.repo.Patch(ctx, userID, patch); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("update profile failed")
		s.sink.Notify(updateFailedNotice)
		return domain.Remote("update profile", err)
	}

	s.mu.Lock()
	if s.profile != nil && s.profile.UserID == userID {
		patch.Apply(s.profile)
		normalize(s.profile)
	}
	s.mu.Unlock()

	s.sink.Notify(updatedNotice)
	return nil
}

// normalize maps blank optional fields to unset and nil sets to empty ones,
// so local state matches what a fetch would return.
func normalize(p *domain.Profile) {
	p.FullName = domain.NullIfEmpty(p.FullName)
	p.City = domain.NullIfEmpty(p.City)
	p.BrandStyle = domain.NullIfEmpty(p.BrandStyle)
	p.PostFrequency = domain.NullIfEmpty(p.PostFrequency)
	if p.Services == nil {
		p.Services = []string{}
	}
	if p.Events == nil {
		p.Events = []string{}
	}
}

func (s *Store) userID() string {
	if s.identity == nil {
		return ""
	}
	return s.identity.Current().UserID()
}

func (s *Store) set(p *domain.Profile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}
