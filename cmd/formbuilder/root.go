package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/logger"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

type rootOptions struct {
	logLevel      string
	strict        bool
	interpolation string

	// logOut redirects logs away from the global stderr logger.
	logOut io.Writer
	// provider replaces the survey terminal prompts.
	provider prompt.Provider

	log logr.Logger
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formbuilder",
		Short:         "Render data-driven forms into HTML pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			if opts.logOut != nil {
				opts.log, _ = logger.New(level, opts.logOut)
			} else {
				opts.log = logger.Get(level)
			}
			cmd.SetContext(logger.WithLogger(cmd.Context(), opts.log))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.strict, "strict", false, "report missing containers, unknown types and abandoned fields as errors")
	flags.StringVar(&opts.interpolation, "interpolation", "", "override interpolation mode (verbatim, escape, sanitize)")

	cmd.AddCommand(newRenderCmd(opts), newAddCmd(opts), newExportCmd(opts))
	return cmd
}

// builderOptions layers the global flags over the options read from the
// config file.
func (o *rootOptions) builderOptions(fromFile []builder.Option) ([]builder.Option, error) {
	options := append([]builder.Option{}, fromFile...)
	if o.strict {
		options = append(options, builder.WithPolicy(builder.PolicyStrict))
	}
	if o.interpolation != "" {
		mode, err := render.ParseInterpolation(o.interpolation)
		if err != nil {
			return nil, err
		}
		options = append(options, builder.WithInterpolation(mode))
	}
	return append(options, builder.WithLogger(o.log)), nil
}

func (o *rootOptions) promptProvider(cmd *cobra.Command) prompt.Provider {
	if o.provider != nil {
		return o.provider
	}
	in, inOK := cmd.InOrStdin().(*os.File)
	out, outOK := cmd.OutOrStdout().(*os.File)
	if inOK && outOK {
		return prompt.NewSurveyProvider(prompt.WithStdio(in, out, cmd.ErrOrStderr()))
	}
	return prompt.NewSurveyProvider()
}

func writeOutput(cmd *cobra.Command, path string, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
