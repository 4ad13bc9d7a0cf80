// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the generator service is up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := ctx.services()
			if err != nil {
				return err
			}

			status, err := services.Submitter.Health(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "generator: %s\n", status)
			return nil
		},
	}
}
