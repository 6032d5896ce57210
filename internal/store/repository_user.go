// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, Role, CreatedAt).
//
// The role is computed inside the INSERT. Two concurrent first
// registrations can both see an empty table; the partial unique index on the
// administrator role rejects the loser, whose insert is retried once and then
// lands as a member.
//
// Error handling:
//   - unique violation on users.email → [ErrEmailAlreadyExists].
//   - any other driver-level error → [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := r.createUser(ctx, user)
	if errors.Is(err, ErrAdministratorExists) {
		logger.FromContext(ctx).Warn().
			Str("func", "*userRepository.CreateUser").
			Msg("lost the race for the administrator role, retrying as member")
		created, err = r.createUser(ctx, user)
	}

	return created, err
}

func (r *userRepository) createUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintUserEmail):
			log.Info().Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		case isUniqueViolation(err, constraintUserRole):
			return models.User{}, ErrAdministratorExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	log.Info().Str("func", "*userRepository.CreateUser").Object("user", created).Msg("user created")
	return created, nil
}

// FindUserByEmail retrieves the user whose email matches exactly
// (case-sensitive). [ErrUserNotFound] is returned on a miss.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

// FindUserByID retrieves the user with the given identifier.
// [ErrUserNotFound] is returned on a miss.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserQuery(where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, &user.Role, timestamp{&user.CreatedAt})
	return user, err
}
