package tui

import "errors"

// ErrInterrupted reports that the user aborted a prompt (ctrl-c / EOF).
// Sessions translate it into a clean stop.
var ErrInterrupted = errors.New("tui: interrupted")
