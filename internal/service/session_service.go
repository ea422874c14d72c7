package service

import (
	"context"
	"strings"

	"pico-pos/internal/catalog"
	"pico-pos/internal/ledger"
	"pico-pos/internal/model"

	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	ledger     *ledger.Ledger
	analyst    Analyst
	profiles   catalog.SeedProfiles
	demoMarker string
	logger     zerolog.Logger
}

// NewSessionService creates a new session service. Accounts containing
// demoMarker get the demo profile preset. The analyst, if any, has its
// credits reset when a session ends.
func NewSessionService(l *ledger.Ledger, analyst Analyst, profiles catalog.SeedProfiles, demoMarker string, logger zerolog.Logger) SessionService {
	return &sessionService{
		ledger:     l,
		analyst:    analyst,
		profiles:   profiles,
		demoMarker: strings.ToLower(demoMarker),
		logger:     logger.With().Str("service", "session").Logger(),
	}
}

// Login picks the preset for the account and installs it as the active profile.
func (s *sessionService) Login(ctx context.Context, account string) (model.StoreProfile, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return model.StoreProfile{}, model.NewDomainError(model.ErrCodeMissingField, "account is required")
	}

	preset := s.profiles.Default
	if s.demoMarker != "" && strings.Contains(strings.ToLower(account), s.demoMarker) {
		preset = s.profiles.Demo
	}

	profile := preset.StoreProfile()
	if err := s.ledger.SetProfile(profile); err != nil {
		s.logger.Error().Err(err).Msg("preset profile is invalid")
		return model.StoreProfile{}, err
	}

	s.logger.Info().
		Str("store", profile.Name).
		Str("currency", profile.Currency).
		Msg("session started")

	return profile, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	s.ledger.Logout()
	if s.analyst != nil {
		s.analyst.Reset()
	}
	s.logger.Info().Msg("session ended")
}

func (s *sessionService) Current(ctx context.Context) (model.StoreProfile, error) {
	return s.ledger.Profile()
}

// UpdateProfile requires an active session; an invalid profile leaves the
// current one untouched.
func (s *sessionService) UpdateProfile(ctx context.Context, profile model.StoreProfile) (model.StoreProfile, error) {
	if _, err := s.ledger.Profile(); err != nil {
		return model.StoreProfile{}, err
	}

	if err := s.ledger.SetProfile(profile); err != nil {
		s.logger.Warn().Err(err).Msg("profile rejected")
		return model.StoreProfile{}, err
	}

	s.logger.Info().Str("store", profile.Name).Msg("profile updated")
	return profile, nil
}
