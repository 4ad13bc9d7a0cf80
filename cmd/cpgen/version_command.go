// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := ctx.buildInfo()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Build version: %s\n", valueOrNA(info.BuildVersion()))
			fmt.Fprintf(out, "Build date: %s\n", valueOrNA(info.BuildDate()))
			fmt.Fprintf(out, "Build commit: %s\n", valueOrNA(info.BuildCommit()))
			return nil
		},
	}
}

func valueOrNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
