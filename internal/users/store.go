// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import "context"

// Repository defines the data access contract for dashboard accounts.
type Repository interface {
	List(ctx context.Context) ([]User, error)

	// Get returns [apperr.NotFound] if the account does not exist.
	Get(ctx context.Context, id string) (User, error)

	// FindByLogin matches either the username or the email, with the password hash loaded.
	FindByLogin(ctx context.Context, login string) (User, error)

	Create(ctx context.Context, user *User) error

	// Update persists username, email, role and the active flag.
	Update(ctx context.Context, user *User) error

	// UpdatePassword replaces only the password hash.
	UpdatePassword(ctx context.Context, id, hash string) error

	// TouchLogin stamps the last successful login.
	TouchLogin(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
}
