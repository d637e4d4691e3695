// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/pkg/pointer"
)

func TestDecode(t *testing.T) {
	ok := gateway.Decode(gateway.Envelope[hierarchy.Story]{Success: true, Data: hierarchy.Story{ID: "s1"}}, http.StatusOK)
	story, err := ok.Unwrap()
	require.NoError(t, err)
	assert.True(t, ok.IsOk())
	assert.Equal(t, "s1", story.ID)

	failed := gateway.Decode(gateway.Envelope[hierarchy.Story]{Message: "Story not found"}, http.StatusNotFound)
	_, err = failed.Unwrap()
	assert.False(t, failed.IsOk())
	assert.ErrorIs(t, err, gateway.ErrNotFound)
	assert.Equal(t, "Story not found", gateway.Message(err))

	lying := gateway.Decode(gateway.Envelope[int]{Success: true, Data: 1}, http.StatusBadGateway)
	assert.False(t, lying.IsOk())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, gateway.NetworkFallback, gateway.Message(errors.New("dial tcp: refused")))
	assert.Equal(t, gateway.NetworkFallback, gateway.Message(&gateway.Error{Cause: errors.New("timeout")}))
	assert.Equal(t, "Conflict", gateway.Message(fmt.Errorf("create: %w", &gateway.Error{Message: "Conflict", Status: 409})))

	_, err := gateway.Fail[int](nil).Unwrap()
	assert.Error(t, err)
	assert.Equal(t, gateway.NetworkFallback, gateway.Message(err))
}

func TestError_IsNotFoundOnlyFor404(t *testing.T) {
	assert.NotErrorIs(t, &gateway.Error{Status: http.StatusInternalServerError}, gateway.ErrNotFound)
	assert.ErrorIs(t, &gateway.Error{Status: http.StatusNotFound}, gateway.ErrNotFound)
}

func TestStoryPayload_OmitsNilOrder(t *testing.T) {
	raw, err := json.Marshal(gateway.StoryPayload{ProductID: "P1"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"order"`)

	raw, err = json.Marshal(gateway.StoryPayload{ProductID: "P1", Order: pointer.To(4)})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"order":4`)
}
