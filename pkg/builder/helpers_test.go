package builder

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/prompt"
)

type failingProvider struct {
	prompt.Provider
	err error
}

func (f failingProvider) Input(context.Context, prompt.InputConfig) (string, error) {
	return "", f.err
}
