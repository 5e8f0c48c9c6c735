package prompt

import "context"

// InputConfig configures a single-line text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Provider is the synchronous input capability used when a field is added
// interactively. Input returns ErrAborted when the user cancels; an empty
// string is a valid, distinct answer.
type Provider interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// Funcs adapts plain functions to Provider. Input reports ok=false for a
// cancelled prompt. A nil Confirm answers false.
type Funcs struct {
	InputFunc   func(message string) (value string, ok bool)
	ConfirmFunc func(message string) bool
}

var _ Provider = Funcs{}

func (f Funcs) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.InputFunc == nil {
		return "", ErrAborted
	}
	value, ok := f.InputFunc(cfg.Message)
	if !ok {
		return "", ErrAborted
	}
	return value, nil
}

func (f Funcs) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if f.ConfirmFunc == nil {
		return false, nil
	}
	return f.ConfirmFunc(cfg.Message), nil
}
