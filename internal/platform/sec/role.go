// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to a dashboard account.
type UserRole string

const (
	// RoleAdmin manages users and languages in addition to content.
	RoleAdmin UserRole = "admin"

	// RoleEditor creates and edits products, stories, chapters, verses and hymns.
	RoleEditor UserRole = "editor"

	// RoleViewer can browse content but never mutate it.
	RoleViewer UserRole = "viewer"
)

// IsValid reports whether r is a recognised role.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
