// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/sec"
	"github.com/taibuivan/bibble/internal/platform/validate"
	"github.com/taibuivan/bibble/pkg/uuid"
)

// TokenProvider signs access tokens.
type TokenProvider interface {
	Issue(who sec.Identity) (sec.AccessToken, error)
}

// Service implements login and account management.
type Service struct {
	repo   Repository
	tokens TokenProvider
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// # Login

// LoginInput holds the credentials of a login attempt. Login is a username or an email.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Session is what a successful login returns.
type Session struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int64     `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        User      `json:"user"`
}

/*
Login verifies credentials and issues an access token.

Returns:
  - Session: the bearer token and the account
  - error: [apperr.Unauthorized] for any credential mismatch, so callers
    cannot tell unknown accounts from wrong passwords
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (Session, error) {
	validator := &validate.Validator{}
	validator.Required(FieldLogin, input.Login).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return Session{}, err
	}

	invalid := apperr.Unauthorized("Invalid login credentials")

	user, err := service.repo.FindByLogin(ctx, strings.TrimSpace(input.Login))
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return Session{}, invalid
	}
	if err != nil {
		return Session{}, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.WarnContext(ctx, "login_rejected", slog.String("user_id", user.ID))
		return Session{}, invalid
	}
	if !user.IsActive {
		return Session{}, apperr.Unauthorized("This account is disabled")
	}

	token, err := service.tokens.Issue(sec.Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return Session{}, apperr.Internal(fmt.Errorf("sign access token: %w", err))
	}

	if err := service.repo.TouchLogin(ctx, user.ID); err != nil {
		service.logger.WarnContext(ctx, "login_touch_failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	service.logger.InfoContext(ctx, "user_logged_in", slog.String("user_id", user.ID))
	user.PasswordHash = ""
	return Session{
		AccessToken: token.Value,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(token.ExpiresAt).Round(time.Second) / time.Second),
		ExpiresAt:   token.ExpiresAt,
		User:        user,
	}, nil
}

// # Accounts

// UserInput is the body of a create or update. Password is optional on update.
type UserInput struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password,omitempty"`
	Role     sec.UserRole `json:"role"`
	IsActive *bool        `json:"isActive,omitempty"`
}

func (input UserInput) normalize() UserInput {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = sec.UserRole(strings.ToLower(strings.TrimSpace(string(input.Role))))
	return input
}

func (input UserInput) validate(passwordRequired bool) error {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		MaxLen(FieldUsername, input.Username, 64).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		OneOf(FieldRole, string(input.Role), string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleViewer))

	if passwordRequired || input.Password != "" {
		validator.Required(FieldPassword, input.Password).
			MinLen(FieldPassword, input.Password, sec.MinPasswordLength).
			Custom(FieldPassword, len(input.Password) > sec.MaxPasswordBytes, fmt.Sprintf("Must be at most %d bytes", sec.MaxPasswordBytes))
	}
	return validator.Err()
}

func (service *Service) List(ctx context.Context) ([]User, error) {
	return service.repo.List(ctx)
}

func (service *Service) Get(ctx context.Context, id string) (User, error) {
	return service.repo.Get(ctx, id)
}

// Create adds an account. New accounts are active unless IsActive says otherwise.
func (service *Service) Create(ctx context.Context, input UserInput) (User, error) {
	input = input.normalize()
	if err := input.validate(true); err != nil {
		return User{}, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return User{}, apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     input.IsActive == nil || *input.IsActive,
	}
	if err := service.repo.Create(ctx, &user); err != nil {
		return User{}, err
	}

	service.logger.InfoContext(ctx, "user_created", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	user.PasswordHash = ""
	return user, nil
}

/*
Update changes an account. actorID is the admin making the change.

Description: Admins cannot demote or disable themselves, which keeps at
least one admin able to sign in. A non-empty Password resets it.
*/
func (service *Service) Update(ctx context.Context, actorID, id string, input UserInput) (User, error) {
	input = input.normalize()
	if err := input.validate(false); err != nil {
		return User{}, err
	}

	user, err := service.repo.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	active := user.IsActive
	if input.IsActive != nil {
		active = *input.IsActive
	}
	if id == actorID && (input.Role != sec.RoleAdmin || !active) {
		return User{}, apperr.Conflict("You cannot remove your own admin access")
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Role = input.Role
	user.IsActive = active
	if err := service.repo.Update(ctx, &user); err != nil {
		return User{}, err
	}

	if input.Password != "" {
		hash, err := sec.HashPassword(input.Password)
		if err != nil {
			return User{}, apperr.Internal(fmt.Errorf("hash password: %w", err))
		}
		if err := service.repo.UpdatePassword(ctx, id, hash); err != nil {
			return User{}, err
		}
		service.logger.InfoContext(ctx, "user_password_reset", slog.String("user_id", id))
	}

	service.logger.InfoContext(ctx, "user_updated", slog.String("user_id", id))
	return user, nil
}

// Delete removes an account. Admins cannot delete themselves.
func (service *Service) Delete(ctx context.Context, actorID, id string) error {
	if id == actorID {
		return apperr.Conflict("You cannot delete your own account")
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "user_deleted", slog.String("user_id", id))
	return nil
}
