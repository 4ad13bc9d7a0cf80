// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command cpgen is the client of the charter party generator. Without a
// subcommand it opens the interactive form; submit, health and version are
// one-shot commands for scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Set by linker flags at build time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
