// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/gateway/httpgateway"
	"github.com/taibuivan/bibble/internal/content/gateway/memory"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
)

type harness struct {
	app    *app
	gw     *memory.Gateway
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()

	gw := memory.New()
	gw.LanguageTable.Seed(
		hierarchy.Language{ID: "lang-en", Name: "English", Code: "en", IsActive: true, IsDefault: true, SortOrder: 1},
		hierarchy.Language{ID: "lang-fr", Name: "French", Code: "fr", IsActive: true, SortOrder: 2},
	)
	gw.ProductTable.Seed(
		hierarchy.Product{ID: "p-1", Type: hierarchy.ProductBook, Status: hierarchy.StatusActive},
		hierarchy.Product{ID: "p-2", Type: hierarchy.ProductSong, Status: hierarchy.StatusDraft},
	)
	gw.StoryTable.Seed(hierarchy.Story{ID: "story-a", ProductID: "p-1", Title: multilingual.Text{"en": "Genesis"}, Order: 1})

	h := &harness{gw: gw, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	h.app = &app{
		gateway: gw,
		login: func(_ context.Context, login, password string) (httpgateway.Session, error) {
			if password != "secret" {
				return httpgateway.Session{}, &gateway.Error{Message: "Invalid login credentials", Status: 401}
			}
			return httpgateway.Session{AccessToken: "tok-" + login}, nil
		},
		env:    func(string) string { return "" },
		in:     strings.NewReader(stdin),
		out:    h.out,
		errOut: h.errOut,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return h
}

func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	return h.app.run(t.Context(), args)
}

/*
TestRun_UsageErrors verifies argument mistakes exit with 2 and print usage.
*/
func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no_command", nil},
		{"unknown_command", []string{"publish"}},
		{"bad_format", []string{"-o", "xml", "languages"}},
		{"missing_id", []string{"get", "story"}},
		{"unknown_kind", []string{"get", "comic", "c-1"}},
		{"list_products", []string{"list", "product", "p-1"}},
		{"save_without_file", []string{"save", "story"}},
		{"import_action", []string{"import", "preview", "x.csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "")
			assert.Equal(t, 2, h.run(t, tt.args...))
			assert.Contains(t, h.errOut.String(), "usage: bibblectl")
		})
	}
}

/*
TestRun_LanguagesJSON verifies the JSON output format.
*/
func TestRun_LanguagesJSON(t *testing.T) {
	h := newHarness(t, "")
	require.Equal(t, 0, h.run(t, "-o", "json", "languages"))

	var languages []hierarchy.Language
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &languages))
	require.Len(t, languages, 2)
	assert.Equal(t, "en", languages[0].Code)
}

/*
TestRun_ProductsYAML verifies filtering and the default YAML output.
*/
func TestRun_ProductsYAML(t *testing.T) {
	h := newHarness(t, "")
	require.Equal(t, 0, h.run(t, "products", "-type", "song"))

	assert.Contains(t, h.out.String(), "id: p-2")
	assert.NotContains(t, h.out.String(), "p-1")
}

/*
TestRun_GetMissing verifies that backend failures print their message and exit 1.
*/
func TestRun_GetMissing(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, 1, h.run(t, "get", "story", "missing"))
	assert.Contains(t, h.errOut.String(), "error: Story not found")
}

/*
TestRun_SaveStoryAssignsNextOrder creates a story from a YAML draft on stdin.
*/
func TestRun_SaveStoryAssignsNextOrder(t *testing.T) {
	h := newHarness(t, "parent: p-1\ntitle:\n  en: Exodus\n")
	require.Equal(t, 0, h.run(t, "-o", "json", "save", "story", "-f", "-"), h.errOut.String())

	var saved hierarchy.Story
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &saved))
	assert.Equal(t, 2, saved.Order)
	assert.Equal(t, multilingual.Text{"en": "Exodus"}, saved.Title)

	assert.Contains(t, h.errOut.String(), "ok: ")
	assert.Contains(t, h.errOut.String(), "next: create chapter "+saved.ID)
}

/*
TestRun_SaveEditMergesLanguages verifies an edit only touches the languages in the draft.
*/
func TestRun_SaveEditMergesLanguages(t *testing.T) {
	h := newHarness(t, "title:\n  fr: Genèse\n")
	require.Equal(t, 0, h.run(t, "save", "story", "-id", "story-a", "-f", "-"), h.errOut.String())

	stories := h.gw.StoryTable.Rows()
	require.Len(t, stories, 1)
	assert.Equal(t, multilingual.Text{"en": "Genesis", "fr": "Genèse"}, stories[0].Title)
	assert.Equal(t, 1, stories[0].Order)
}

/*
TestRun_SaveValidationError verifies a rejected draft names its field and writes nothing.
*/
func TestRun_SaveValidationError(t *testing.T) {
	h := newHarness(t, "parent: story-a\ntitle:\n  en: In the beginning\n")
	assert.Equal(t, 1, h.run(t, "save", "chapter", "-f", "-"))

	assert.Contains(t, h.errOut.String(), "error: title:")
	assert.Empty(t, h.gw.ChapterTable.Payloads())
}

/*
TestRun_SaveRejectsUnknownKeys verifies draft typos are reported.
*/
func TestRun_SaveRejectsUnknownKeys(t *testing.T) {
	h := newHarness(t, "parent: p-1\ntitel:\n  en: Exodus\n")
	assert.Equal(t, 1, h.run(t, "save", "story", "-f", "-"))
	assert.Contains(t, h.errOut.String(), "parse draft")
}

/*
TestRun_Delete verifies deletes go through the gateway.
*/
func TestRun_Delete(t *testing.T) {
	h := newHarness(t, "")
	require.Equal(t, 0, h.run(t, "delete", "story", "story-a"))

	assert.Empty(t, h.gw.StoryTable.Rows())
	assert.Contains(t, h.errOut.String(), "ok: Story deleted")
}

/*
TestRun_Import covers validate and commit against the import stub.
*/
func TestRun_Import(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.csv")
	require.NoError(t, os.WriteFile(path, []byte("story_order\n1\n"), 0o600))

	h := newHarness(t, "")
	require.Equal(t, 0, h.run(t, "import", "validate", path))
	assert.Equal(t, []string{"verses.csv:story_order\n1\n"}, h.gw.ImportStub.Received)
	assert.Contains(t, h.out.String(), "isValid: true")

	require.Equal(t, 0, h.run(t, "import", "commit", "p-1", path))
	assert.Contains(t, h.out.String(), "Imported verses.csv into p-1")

	h.gw.ImportStub.Report = gateway.ImportReport{IsValid: false, Errors: []string{"Row 2: bad"}}
	assert.Equal(t, 1, h.run(t, "import", "validate", path))
	assert.Contains(t, h.errOut.String(), "verses.csv has 1 problem(s)")
}

/*
TestRun_Login covers the environment and prompt password sources.
*/
func TestRun_Login(t *testing.T) {
	h := newHarness(t, "secret\n")
	require.Equal(t, 0, h.run(t, "login", "-u", "admin"))
	assert.Equal(t, "export BIBBLE_API_TOKEN=tok-admin\n", h.out.String())

	h = newHarness(t, "")
	h.app.env = func(name string) string {
		if name == passwordEnv {
			return "secret"
		}
		return ""
	}
	require.Equal(t, 0, h.run(t, "login", "-u", "editor"))
	assert.Contains(t, h.out.String(), "tok-editor")

	h = newHarness(t, "wrong\n")
	assert.Equal(t, 1, h.run(t, "login", "-u", "admin"))
	assert.Contains(t, h.errOut.String(), "Invalid login credentials")
}

/*
TestRun_Wizard drives the wizard through a scripted session.
*/
func TestRun_Wizard(t *testing.T) {
	script := strings.Join([]string{
		"next",
		"edit story-a",
		"next",
		"state",
		"next",
		"edit ch-1",
		"next",
		"jump",
		"quit",
	}, "\n")

	h := newHarness(t, script)
	h.gw.ChapterTable.Seed(hierarchy.Chapter{ID: "ch-1", StoryID: "story-a", Title: multilingual.Text{"en": "One"}, Order: 1})

	require.Equal(t, 0, h.run(t, "-o", "json", "wizard", "p-1"), h.errOut.String())

	errOut := h.errOut.String()
	assert.Contains(t, errOut, "failed: select a story first")
	assert.Contains(t, errOut, "failed: select a chapter first")
	assert.Contains(t, errOut, "next: create verse ch-1")
	assert.Contains(t, errOut, `failed: unknown wizard command "jump"`)

	assert.Contains(t, h.out.String(), `"step": "chapter"`)
	assert.Contains(t, h.out.String(), `"editingId": "ch-1"`)
}

/*
TestRun_WizardRejectsSongbooks verifies the wizard only opens book products.
*/
func TestRun_WizardRejectsSongbooks(t *testing.T) {
	h := newHarness(t, "quit\n")
	assert.Equal(t, 1, h.run(t, "wizard", "p-2"))
	assert.Contains(t, h.errOut.String(), "only walks book products")
}

/*
TestParseDraft_Empty verifies an empty document is an error.
*/
func TestParseDraft_Empty(t *testing.T) {
	_, err := ParseDraft(strings.NewReader(""))
	assert.EqualError(t, err, "draft is empty")
}
