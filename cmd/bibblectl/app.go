// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/bibble/internal/content/form"
	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/gateway/httpgateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
)

// errUsage marks argument mistakes; run prints the usage text for them.
var errUsage = errors.New("usage")

const usage = `usage: bibblectl [-o yaml|json] <command> [arguments]

commands:
  login -u <username|email>          sign in; password from BIBBLE_PASSWORD or stdin
  languages                          list configured languages
  products [-type t1,t2] [-status s] [-page n] [-limit n]
  list <story|chapter|verse|hymn> <parentID>
  get <kind> <id>
  save <kind> [-id <id>] -f <file|->  create or edit from a YAML draft
  delete <kind> <id>
  import validate <file.csv>
  import commit <productID> <file.csv>
  wizard <productID>                 step through story, chapter and verse
`

type loginFunc func(ctx context.Context, login, password string) (httpgateway.Session, error)

// app holds everything a command needs. Tests swap in the memory gateway and buffers.
type app struct {
	gateway gateway.Gateway
	login   loginFunc
	env     func(string) string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger

	format string
}

type command func(ctx context.Context, args []string) error

func (a *app) commands() map[string]command {
	return map[string]command{
		"login":     a.runLogin,
		"languages": a.runLanguages,
		"products":  a.runProducts,
		"list":      a.runList,
		"get":       a.runGet,
		"save":      a.runSave,
		"delete":    a.runDelete,
		"import":    a.runImport,
		"wizard":    a.runWizard,
	}
}

// run executes one command line and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("bibblectl", flag.ContinueOnError)
	flags.SetOutput(a.errOut)
	flags.StringVar(&a.format, "o", "yaml", "output format: yaml or json")
	flags.Usage = func() { fmt.Fprint(a.errOut, usage) }

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if a.format != "yaml" && a.format != "json" {
		fmt.Fprintf(a.errOut, "unknown output format %q\n\n%s", a.format, usage)
		return 2
	}

	rest := flags.Args()
	if len(rest) == 0 {
		fmt.Fprint(a.errOut, usage)
		return 2
	}

	cmd, ok := a.commands()[rest[0]]
	if !ok {
		fmt.Fprintf(a.errOut, "unknown command %q\n\n%s", rest[0], usage)
		return 2
	}

	if err := cmd(ctx, rest[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(a.errOut, "%v\n\n%s", err, usage)
			return 2
		}
		fmt.Fprintln(a.errOut, "error:", describe(err))
		return 1
	}
	return 0
}

// describe renders err for a terminal: validation failures name their field,
// gateway failures show the backend message.
func describe(err error) string {
	var violation *form.ValidationError
	if errors.As(err, &violation) {
		return violation.Field + ": " + violation.Message
	}

	var gatewayErr *gateway.Error
	if errors.As(err, &gatewayErr) {
		return gateway.Message(err)
	}
	return err.Error()
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

// # Output

// print writes v in the selected format. YAML keys follow the JSON names so
// both formats read the same.
func (a *app) print(v any) error {
	if a.format == "json" {
		encoder := json.NewEncoder(a.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(a.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}

// # Collaborators

// terminal is the form's Notifier and Navigator on a CLI: it reports on errOut.
type terminal struct {
	out io.Writer
}

func (t terminal) Success(message string) { fmt.Fprintln(t.out, "ok:", message) }
func (t terminal) Error(message string)   { fmt.Fprintln(t.out, "failed:", message) }

func (t terminal) Navigate(to form.Destination) {
	target := to.ID
	if target == "" {
		target = to.ParentID
	}
	fmt.Fprintf(t.out, "next: %s %s %s\n", to.Screen, to.Kind, target)
}

// deps builds controller collaborators around a fresh language snapshot.
func (a *app) deps(ctx context.Context) (form.Deps, error) {
	languages, err := a.activeLanguages(ctx)
	if err != nil {
		return form.Deps{}, err
	}

	screen := terminal{out: a.errOut}
	return form.Deps{
		Gateway:   a.gateway,
		Languages: languages,
		Notifier:  screen,
		Navigator: screen,
		Scheduler: form.ImmediateScheduler{},
		Logger:    a.logger,
	}, nil
}

func (a *app) activeLanguages(ctx context.Context) (multilingual.LanguageSet, error) {
	languages, err := a.gateway.Languages().List(ctx)
	if err != nil {
		return multilingual.LanguageSet{}, fmt.Errorf("load languages: %w", err)
	}
	return hierarchy.ActiveSet(languages), nil
}

func parseKind(raw string) (hierarchy.Kind, error) {
	kind := hierarchy.Kind(strings.ToLower(raw))
	switch kind {
	case hierarchy.KindProduct, hierarchy.KindStory, hierarchy.KindChapter, hierarchy.KindVerse, hierarchy.KindHymn:
		return kind, nil
	}
	return "", usageError("unknown kind %q", raw)
}
