// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-cp-generator/internal/client"
	"github.com/MKhiriev/go-cp-generator/internal/config"
	linkhttp "github.com/MKhiriev/go-cp-generator/internal/handler/http"
	"github.com/MKhiriev/go-cp-generator/internal/server"
	"github.com/MKhiriev/go-cp-generator/internal/tui"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var ctx *commandContext

	rootCmd := &cobra.Command{
		Use:           "cpgen",
		Short:         "Generate a final charter party from a recap, a base CP and negotiated clauses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, ctx)
		},
	}

	ctx = newCommandContext(config.RegisterFlags(rootCmd.PersistentFlags()))

	rootCmd.AddCommand(newSubmitCommand(ctx))
	rootCmd.AddCommand(newHealthCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(ctx))

	return rootCmd
}

// runInteractive wires the link server and the terminal UI and runs them
// until the user quits.
func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	services, err := ctx.services()
	if err != nil {
		return err
	}

	log := ctx.log()

	linkServer, err := server.NewLinkServer(linkhttp.NewHandler(services.Artifacts, log).Init(), cfg.LinkServer, log)
	if err != nil {
		return err
	}
	ctx.store.SetBaseURL(linkServer.BaseURL())

	ui, err := tui.New(services, cfg.App, ctx.buildInfo(), log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services, ui, linkServer, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(cmd.Context())
}
