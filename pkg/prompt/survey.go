package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyProvider prompts on a terminal through survey.
type SurveyProvider struct {
	opts []survey.AskOpt
}

var _ Provider = (*SurveyProvider)(nil)

// SurveyOption configures a SurveyProvider.
type SurveyOption func(*SurveyProvider)

// WithStdio redirects prompts away from the process stdio.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) SurveyOption {
	return func(p *SurveyProvider) {
		p.opts = append(p.opts, survey.WithStdio(in, out, errOut))
	}
}

// NewSurveyProvider constructs a terminal provider.
func NewSurveyProvider(options ...SurveyOption) *SurveyProvider {
	p := &SurveyProvider{}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *SurveyProvider) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(q, &out, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyProvider) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	q := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(q, &out, p.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}
