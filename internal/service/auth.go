// Package service contains the business rules of both services: the
// authentication contract in AuthService and ownership enforcement in
// NoteService. Handlers translate HTTP to these calls; repositories do the
// storage. Neither concern leaks into this layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"micronotes/internal/apperror"
	"micronotes/internal/auth"
	"micronotes/internal/model"
	"micronotes/internal/repository"
)

// MaxEmailLength bounds stored emails.
const MaxEmailLength = 255

// AuthService implements signup, login, and identity lookup.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService wires an AuthService from its dependencies.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult bundles the authenticated user with the token issued for them.
type AuthResult struct {
	User  *model.User
	Token string
}

// canonicalizeEmail normalizes an email for lookup and storage. Uniqueness
// is case-insensitive in effect because every path goes through here first.
func canonicalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a new account.
//
// The email lookup before insert exists to produce a friendly conflict
// message; the store's UNIQUE constraint is the actual enforcement, so a
// concurrent duplicate signup still ends in a conflict, not a broken row.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*model.User, error) {
	email = canonicalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.ValidationFailed("email", "email and password required")
	}
	if len(email) > MaxEmailLength {
		return nil, apperror.ValidationFailed("email",
			fmt.Sprintf("email must be %d characters or fewer", MaxEmailLength))
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperror.Conflict("email already in use")
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("service/auth: checking email: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up",
		slog.Int64("userID", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Login verifies credentials and issues a token whose subject is the
// stringified user id, with the email as an auxiliary claim.
//
// Unknown email and wrong password produce the identical error so the
// response never reveals which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = canonicalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("service/auth: looking up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(
		strconv.FormatInt(user.ID, 10),
		map[string]string{"email": user.Email},
	)
	if err != nil {
		return nil, fmt.Errorf("service/auth: issuing token for user %d: %w", user.ID, err)
	}

	s.logger.Info("user logged in", slog.Int64("userID", user.ID))

	return &AuthResult{User: user, Token: token}, nil
}

// Me resolves a verified token subject back to the current user record.
//
// The store is re-read rather than trusting the token's email claim, so the
// response reflects later changes and a stale token for a deleted user
// yields not found.
func (s *AuthService) Me(ctx context.Context, subject string) (*model.User, error) {
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, apperror.NotFound("user not found")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("service/auth: fetching user %d: %w", id, err)
	}

	return user, nil
}
