// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/content/form"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from  form.State
		event form.Event
		to    form.State
		ok    bool
	}{
		{form.Loading, form.EventLoaded, form.Editing, true},
		{form.Loading, form.EventLoadFailed, form.Failed, true},
		{form.Editing, form.EventSubmit, form.Submitting, true},
		{form.Submitting, form.EventInvalid, form.Editing, true},
		{form.Submitting, form.EventSucceeded, form.Succeeded, true},
		{form.Submitting, form.EventFailed, form.Failed, true},
		{form.Failed, form.EventResume, form.Editing, true},

		{form.Loading, form.EventSubmit, form.Loading, false},
		{form.Submitting, form.EventSubmit, form.Submitting, false},
		{form.Succeeded, form.EventSubmit, form.Succeeded, false},
		{form.Editing, form.EventSucceeded, form.Editing, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			to, ok := form.Transition(tt.from, tt.event)
			assert.Equal(t, tt.to, to)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
