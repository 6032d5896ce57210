// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// sessionService issues HS256 session tokens and maps them back to users.
type sessionService struct {
	userRepository store.UserRepository

	signKey  string
	issuer   string
	duration time.Duration

	logger *logger.Logger
}

func NewSessionService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		userRepository: userRepository,
		signKey:        cfg.SessionSignKey,
		issuer:         cfg.SessionIssuer,
		duration:       cfg.SessionDuration,
		logger:         logger,
	}
}

// Login issues a signed token whose subject is the user's id.
func (s *sessionService) Login(ctx context.Context, user models.User) (models.Token, error) {
	if user.UserID <= 0 {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(s.issuer, user.UserID, s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("session token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Resolve validates token and loads its user fresh from the store, so a
// deleted account loses its session immediately. Every failure is reported
// as ErrUnauthenticated. A bad token additionally wraps ErrInvalidSession and
// a deleted user store.ErrUserNotFound; other store failures wrap neither.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.Principal, error) {
	if token == "" {
		return models.Anonymous, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInvalidSession)
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("invalid session token")
		return models.Anonymous, fmt.Errorf("%w: %w: %w", ErrUnauthenticated, ErrInvalidSession, err)
	}

	user, err := s.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Int64("id", parsed.UserID).Msg("session user lookup failed")
		}
		return models.Anonymous, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return models.NewPrincipal(user), nil
}
