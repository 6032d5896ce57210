// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as salted PBKDF2-HMAC-SHA256 digests.
type authService struct {
	userRepository store.UserRepository

	// hashIterations is the PBKDF2 iteration count for new hashes. Stored
	// hashes carry their own count, so changing it never locks anyone out.
	hashIterations int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashIterations: cfg.PasswordHashIterations,
		logger:         logger,
	}
}

// Register creates a new account. The raw password never leaves this method;
// only its hash is persisted.
//
// Returns the persisted user (with server-assigned UserID and Role) or:
//   - ErrInvalidDataProvided if any argument is empty.
//   - a wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, email, rawPassword, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || rawPassword == "" || name == "" {
		log.Error().Str("email", email).Str("name", name).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(rawPassword, a.hashIterations)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Object("user", user).Msg("user registered")
	return user, nil
}

// Authenticate looks the account up by its exact email and compares the
// password digest in constant time.
//
// Both an unknown email and a wrong password yield ErrInvalidCredentials;
// the wrapped cause (store.ErrUserNotFound or ErrWrongPassword) tells them
// apart.
func (a *authService) Authenticate(ctx context.Context, email, rawPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || rawPassword == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", email).Msg("login attempt for unknown email")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, rawPassword) {
		log.Warn().Int64("id", user.UserID).Msg("wrong password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)
	}

	return user, nil
}
