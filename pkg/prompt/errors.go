package prompt

import "errors"

// ErrAborted signals the user cancelled a prompt (Ctrl+C, EOF, or an exhausted
// script).
var ErrAborted = errors.New("prompt: aborted")
