package prompt

import (
	"context"
	"sync"
)

// Reply is one scripted answer to an Input prompt.
type Reply struct {
	Value     string
	Cancelled bool
}

// Text is a scripted answer carrying value.
func Text(value string) Reply {
	return Reply{Value: value}
}

// Cancel is a scripted cancelled prompt.
var Cancel = Reply{Cancelled: true}

// Scripted replays canned answers in order and records every prompt message.
// Once a script runs out the provider reports ErrAborted.
type Scripted struct {
	Inputs   []Reply
	Confirms []bool

	mu         sync.Mutex
	asked      []string
	inputPos   int
	confirmPos int
}

var _ Provider = (*Scripted)(nil)

func (s *Scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.asked = append(s.asked, cfg.Message)
	if s.inputPos >= len(s.Inputs) {
		return "", ErrAborted
	}
	reply := s.Inputs[s.inputPos]
	s.inputPos++
	if reply.Cancelled {
		return "", ErrAborted
	}
	return reply.Value, nil
}

func (s *Scripted) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.asked = append(s.asked, cfg.Message)
	if s.confirmPos >= len(s.Confirms) {
		return false, ErrAborted
	}
	value := s.Confirms[s.confirmPos]
	s.confirmPos++
	return value, nil
}

// Asked returns the prompt messages seen so far.
func (s *Scripted) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}

// Remaining reports how many scripted inputs and confirmations are unused.
func (s *Scripted) Remaining() (inputs, confirms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Inputs) - s.inputPos, len(s.Confirms) - s.confirmPos
}
