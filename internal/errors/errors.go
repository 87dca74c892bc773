// Package errors is the single errors import for the module. Matching helpers come
// from the standard library; anything that creates or wraps an error records a
// stack trace through pkg/errors so that logged failures point at their origin.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and joining.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Construction and wrapping, all stack-annotated.
var (
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// New returns a plain sentinel-style error without a stack trace, suitable for
// package-level error values compared with Is.
func New(text string) error {
	return stderrors.New(text)
}
