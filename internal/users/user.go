// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package users manages dashboard accounts and issues access tokens.

# Rules

  - Accounts are created by admins; there is no self-registration.
  - Username and Email are unique.
  - PasswordHash is produced by [sec.HashPassword] and never serialized.
  - Inactive accounts cannot log in.
*/
package users

import (
	"time"

	"github.com/taibuivan/bibble/internal/platform/sec"
)

// Field names used in validation details.
const (
	FieldLogin    = "login"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)

// User is a dashboard account.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"isActive"`
	LastLoginAt  *time.Time   `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
