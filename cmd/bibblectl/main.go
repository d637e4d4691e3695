// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Command bibblectl administers Bibble content from a terminal.

It talks to the REST API through the same form controllers and wizard the
dashboard uses, so every save passes the same language and ordinal rules.

	bibblectl login -u maria                       # prints a token for BIBBLE_API_TOKEN
	bibblectl languages
	bibblectl products -type book -status active
	bibblectl list chapter <storyID>
	bibblectl get verse <verseID>
	bibblectl save story -f genesis.yaml           # create
	bibblectl save story -id <storyID> -f edit.yaml
	bibblectl delete hymn <hymnID>
	bibblectl import validate verses.csv
	bibblectl import commit <productID> verses.csv
	bibblectl wizard <productID>                   # reads steps from stdin

Output is YAML unless -o json is given before the command.
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/taibuivan/bibble/internal/content/gateway/httpgateway"
	"github.com/taibuivan/bibble/internal/platform/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})).
		With(slog.String("app", "bibblectl"))

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	client := httpgateway.New(cfg.APIBaseURL,
		httpgateway.WithToken(cfg.APIToken),
		httpgateway.WithTimeout(cfg.Timeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &app{
		gateway: client,
		login:   client.Login,
		env:     os.Getenv,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
		logger:  logger,
	}
	code := cli.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
