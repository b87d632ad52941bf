// Package apperr defines the error kinds surfaced by the CLI.
package apperr

import "errors"

// Sentinel errors for the failure modes the tool can hit. The first two
// carry the exact text printed to stderr; the others are wrapped with
// context at the failure site and matched via errors.Is.
var (
	ErrNotEnoughArguments = errors.New("Not enough arguments")
	ErrInvalidCommand     = errors.New("Invalid command")
	ErrIO                 = errors.New("i/o error")
	ErrParse              = errors.New("parse error")
)
