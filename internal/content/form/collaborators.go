// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

import (
	"time"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// SuccessDelay is how long a success message stays up before navigation.
const SuccessDelay = 1500 * time.Millisecond

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(to Destination)
}

// Scheduler runs fn once after delay.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Screen is the kind of screen a [Destination] points at.
type Screen string

const (
	ScreenList   Screen = "list"
	ScreenCreate Screen = "create"
	ScreenEdit   Screen = "edit"
)

// Destination identifies a screen independently of any router.
type Destination struct {
	Screen   Screen
	Kind     hierarchy.Kind
	ParentID string
	ID       string
}

// ListOf points at the listing of kind under parentID.
func ListOf(kind hierarchy.Kind, parentID string) Destination {
	return Destination{Screen: ScreenList, Kind: kind, ParentID: parentID}
}

// CreateUnder points at the creation screen of kind under parentID.
func CreateUnder(kind hierarchy.Kind, parentID string) Destination {
	return Destination{Screen: ScreenCreate, Kind: kind, ParentID: parentID}
}

// EditOf points at the edit screen of one entity.
func EditOf(kind hierarchy.Kind, id string) Destination {
	return Destination{Screen: ScreenEdit, Kind: kind, ID: id}
}

// TimerScheduler schedules with [time.AfterFunc].
type TimerScheduler struct{}

func (TimerScheduler) After(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// ImmediateScheduler runs fn synchronously, ignoring the delay.
// Non-interactive callers and tests use it.
type ImmediateScheduler struct{}

func (ImmediateScheduler) After(_ time.Duration, fn func()) {
	fn()
}
