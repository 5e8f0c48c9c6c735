package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/internal/openapi"
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/config"
	"github.com/goliatone/go-formbuilder/pkg/dom"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
)

const promptAddAnother = "Add another field?"

type formFlags struct {
	configPath string
	pagePath   string
	outPath    string
	openAPI    string
	operation  string
	format     string
}

func (f *formFlags) bind(cmd *cobra.Command, withPage, withFormat bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "form configuration file (JSON or YAML)")
	flags.StringVar(&f.openAPI, "openapi", "", "OpenAPI document to seed fields from")
	flags.StringVar(&f.operation, "operation", "", "operation id used with --openapi")
	if withPage {
		flags.StringVar(&f.pagePath, "page", "", "host HTML page (default: blank page with <div id=\"form\">)")
		flags.StringVarP(&f.outPath, "out", "o", "", "write the rendered page to this file instead of stdout")
	}
	if withFormat {
		flags.StringVar(&f.format, "format", "json", "export format (json, yaml)")
	}
	_ = cmd.MarkFlagRequired("config")
}

type session struct {
	doc      *dom.Document
	renderer *builder.FormRenderer
}

// open loads the configuration, seeds OpenAPI fields and builds a renderer
// over the host page.
func (f *formFlags) open(ctx context.Context, opts *rootOptions, extra ...builder.Option) (*session, error) {
	file, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	cfg := file.Renderer

	if f.openAPI != "" {
		if f.operation == "" {
			return nil, errors.New("--operation is required with --openapi")
		}
		data, err := os.ReadFile(f.openAPI)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.openAPI, err)
		}
		seeded, err := openapi.FieldsFromOperation(ctx, data, f.operation)
		if err != nil {
			return nil, err
		}
		cfg.Fields = append(cfg.Fields, seeded...)
		opts.log.V(1).Info("seeded fields from openapi", "operation", f.operation, "fields", len(seeded))
	}

	doc, err := f.loadPage()
	if err != nil {
		return nil, err
	}

	options, err := opts.builderOptions(file.Options())
	if err != nil {
		return nil, err
	}
	if f.format != "" {
		format, err := export.ParseFormat(f.format)
		if err != nil {
			return nil, err
		}
		options = append(options, builder.WithExportFormat(format))
	}

	r, err := builder.New(doc, cfg, append(options, extra...)...)
	if err != nil {
		return nil, err
	}
	return &session{doc: doc, renderer: r}, nil
}

func (f *formFlags) loadPage() (*dom.Document, error) {
	if f.pagePath == "" {
		return dom.ParseString(formbuilder.DefaultPage)
	}
	fh, err := os.Open(f.pagePath)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer fh.Close()
	return dom.Parse(fh)
}

func (s *session) render() error {
	s.renderer.ApplyStyles()
	return s.renderer.Initialize()
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	flags := &formFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured fields into the host page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.open(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := s.render(); err != nil {
				return err
			}
			return writeOutput(cmd, flags.outPath, s.doc.String())
		},
	}
	flags.bind(cmd, true, false)
	return cmd
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	flags := &formFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Render the form, then add fields interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			provider := opts.promptProvider(cmd)

			s, err := flags.open(ctx, opts,
				builder.WithPromptProvider(provider),
				builder.WithExportWriter(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			if err := s.render(); err != nil {
				return err
			}

			for {
				if _, err := s.renderer.AddField(ctx); err != nil {
					return err
				}
				again, err := provider.Confirm(ctx, prompt.ConfirmConfig{Message: promptAddAnother})
				if errors.Is(err, prompt.ErrAborted) || (err == nil && !again) {
					break
				}
				if err != nil {
					return err
				}
			}

			if err := writeOutput(cmd, flags.outPath, s.doc.String()); err != nil {
				return err
			}
			return s.renderer.ExportConfiguration()
		},
	}
	flags.bind(cmd, true, true)
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	flags := &formFlags{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the configured field list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.open(cmd.Context(), opts, builder.WithExportWriter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			return s.renderer.ExportConfiguration()
		},
	}
	flags.bind(cmd, false, true)
	return cmd
}
