// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/pkg/query"
	"github.com/taibuivan/bibble/pkg/slice"
)

// passwordEnv lets scripts sign in without a prompt.
const passwordEnv = "BIBBLE_PASSWORD"

func (a *app) subcommand(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(a.errOut)
	return flags
}

// # Session

func (a *app) runLogin(ctx context.Context, args []string) error {
	flags := a.subcommand("login")
	username := flags.String("u", "", "username or email")
	if err := flags.Parse(args); err != nil {
		return usageError("login: %v", err)
	}
	if *username == "" {
		return usageError("login needs -u")
	}

	password := ""
	if a.env != nil {
		password = a.env(passwordEnv)
	}
	if password == "" {
		fmt.Fprint(a.errOut, "password: ")
		line, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	session, err := a.login(ctx, *username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "export BIBBLE_API_TOKEN=%s\n", session.AccessToken)
	return nil
}

// # Reads

func (a *app) runLanguages(ctx context.Context, _ []string) error {
	languages, err := a.gateway.Languages().List(ctx)
	if err != nil {
		return err
	}
	return a.print(languages)
}

func (a *app) runProducts(ctx context.Context, args []string) error {
	flags := a.subcommand("products")
	types := flags.String("type", "", "comma-separated product types")
	status := flags.String("status", "", "product status")
	page := flags.Int("page", 0, "page number")
	limit := flags.Int("limit", 0, "page size")
	if err := flags.Parse(args); err != nil {
		return usageError("products: %v", err)
	}

	filter := gateway.ProductFilter{
		Types:  slice.Map(query.StringSlice(*types), func(t string) hierarchy.ProductType { return hierarchy.ProductType(t) }),
		Status: hierarchy.ProductStatus(*status),
		Page:   *page,
		Limit:  *limit,
	}

	products, err := a.gateway.Products().List(ctx, filter)
	if err != nil {
		return err
	}
	return a.print(products)
}

func (a *app) runList(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("list needs a kind and a parent id")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	parentID := args[1]
	var value any
	switch kind {
	case hierarchy.KindStory:
		value, err = boxed[[]hierarchy.Story](a.gateway.Stories().ListByParent(ctx, parentID))
	case hierarchy.KindChapter:
		value, err = boxed[[]hierarchy.Chapter](a.gateway.Chapters().ListByParent(ctx, parentID))
	case hierarchy.KindVerse:
		value, err = boxed[[]hierarchy.Verse](a.gateway.Verses().ListByParent(ctx, parentID))
	case hierarchy.KindHymn:
		value, err = boxed[[]hierarchy.Hymn](a.gateway.Hymns().ListByParent(ctx, parentID))
	default:
		return usageError("use products to list %ss", kind)
	}
	if err != nil {
		return err
	}
	return a.print(value)
}

func (a *app) runGet(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("get needs a kind and an id")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	id := args[1]
	var value any
	switch kind {
	case hierarchy.KindProduct:
		value, err = boxed[hierarchy.Product](a.gateway.Products().Get(ctx, id))
	case hierarchy.KindStory:
		value, err = boxed[hierarchy.Story](a.gateway.Stories().Get(ctx, id))
	case hierarchy.KindChapter:
		value, err = boxed[hierarchy.Chapter](a.gateway.Chapters().Get(ctx, id))
	case hierarchy.KindVerse:
		value, err = boxed[hierarchy.Verse](a.gateway.Verses().Get(ctx, id))
	default:
		value, err = boxed[hierarchy.Hymn](a.gateway.Hymns().Get(ctx, id))
	}
	if err != nil {
		return err
	}
	return a.print(value)
}

// boxed erases the result type so one print call serves every kind.
func boxed[T any](value T, err error) (any, error) {
	return value, err
}

// # Writes

func (a *app) runSave(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("save needs a kind")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	flags := a.subcommand("save")
	id := flags.String("id", "", "id of the entity to edit; empty creates")
	file := flags.String("f", "", "YAML draft file, or - for stdin")
	if err := flags.Parse(args[1:]); err != nil {
		return usageError("save: %v", err)
	}
	if *file == "" {
		return usageError("save needs -f")
	}

	draft, err := a.readDraft(*file)
	if err != nil {
		return err
	}

	deps, err := a.deps(ctx)
	if err != nil {
		return err
	}
	deps.ParentHint = draft.Parent

	saved, err := saveDraft(ctx, kind, deps, *id, draft)
	if err != nil {
		return err
	}
	return a.print(saved)
}

func (a *app) readDraft(path string) (Draft, error) {
	if path == "-" {
		return ParseDraft(a.in)
	}

	file, err := os.Open(path)
	if err != nil {
		return Draft{}, fmt.Errorf("open draft: %w", err)
	}
	defer file.Close()
	return ParseDraft(file)
}

func (a *app) runDelete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("delete needs a kind and an id")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	id := args[1]
	switch kind {
	case hierarchy.KindProduct:
		err = a.gateway.Products().Delete(ctx, id)
	case hierarchy.KindStory:
		err = a.gateway.Stories().Delete(ctx, id)
	case hierarchy.KindChapter:
		err = a.gateway.Chapters().Delete(ctx, id)
	case hierarchy.KindVerse:
		err = a.gateway.Verses().Delete(ctx, id)
	case hierarchy.KindHymn:
		err = a.gateway.Hymns().Delete(ctx, id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.errOut, "ok: %s deleted\n", kind.Title())
	return nil
}

// # CSV Import

func (a *app) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("import needs validate or commit")
	}

	switch args[0] {
	case "validate":
		if len(args) != 2 {
			return usageError("import validate needs a file")
		}
		return a.withFile(args[1], func(name string, file io.Reader) error {
			report, err := a.gateway.Imports().Validate(ctx, name, file)
			if err != nil {
				return err
			}
			if err := a.print(report); err != nil {
				return err
			}
			if !report.IsValid {
				return fmt.Errorf("%s has %d problem(s)", name, len(report.Errors))
			}
			return nil
		})

	case "commit":
		if len(args) != 3 {
			return usageError("import commit needs a product id and a file")
		}
		return a.withFile(args[2], func(name string, file io.Reader) error {
			message, err := a.gateway.Imports().Commit(ctx, args[1], name, file)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, message)
			return nil
		})
	}
	return usageError("unknown import action %q", args[0])
}

func (a *app) withFile(path string, fn func(name string, file io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return fn(filepath.Base(path), file)
}
