// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cp-generator/internal/artifact"
	"github.com/MKhiriev/go-cp-generator/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// fileArgs implements service.Form over command line flags.
type fileArgs struct {
	paths    map[string]*string
	filename string
}

func (f *fileArgs) File(name string) models.FormFile {
	p, ok := f.paths[name]
	if !ok || strings.TrimSpace(*p) == "" {
		return models.FormFile{Field: name}
	}
	path := strings.TrimSpace(*p)
	return models.FormFile{Field: name, Path: path}
}

func (f *fileArgs) Value(name string) string {
	if name == models.FieldFilename {
		return f.filename
	}
	return ""
}

func newSubmitCommand(ctx *commandContext) *cobra.Command {
	var recap, baseCP, negotiated string
	args := &fileArgs{paths: map[string]*string{
		models.FieldRecap:      &recap,
		models.FieldBaseCP:     &baseCP,
		models.FieldNegotiated: &negotiated,
	}}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Upload the three source files once and save the returned bundle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			services, err := ctx.services()
			if err != nil {
				return err
			}

			region := &cliRegion{}
			alert := &cliAlert{}
			services.Submitter.HandleSubmit(cmd.Context(), args, region, alert)
			if alert.message != "" {
				return errors.New(alert.message)
			}

			result, ok := services.Artifacts.Resolve(region.link)
			if !ok {
				return fmt.Errorf("bundle %s is no longer available", region.link)
			}

			path, err := artifact.Save(cfg.App.DownloadDir, result)
			if err != nil {
				return fmt.Errorf("save bundle: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, region.report)
			fmt.Fprintf(out, "Saved %s (%s)\n", path, humanize.IBytes(uint64(result.Size())))
			if result.Preview != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderPreview(*result.Preview, shouldColorize(out)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recap, "recap", "", "Recap text file (.txt)")
	cmd.Flags().StringVar(&baseCP, "base-cp", "", "Base charter party document (.docx)")
	cmd.Flags().StringVar(&negotiated, "negotiated", "", "Negotiated clauses file (.txt)")
	cmd.Flags().StringVar(&args.filename, "filename", "", "Output document name (default "+models.DefaultFilename+")")

	return cmd
}

// cliRegion collects what the submitter reveals on success.
type cliRegion struct {
	link    string
	visible bool
	report  string
}

func (r *cliRegion) SetDownloadLink(objectURL string) { r.link = objectURL }
func (r *cliRegion) Show()                            { r.visible = true }
func (r *cliRegion) SetReport(text string)            { r.report = text }

type cliAlert struct {
	message string
}

func (a *cliAlert) Alert(message string) { a.message = message }
