// Package dop defines the operator types and sentinel errors shared by
// the evaluation pipeline.
package dop

import "errors"

// Sentinel errors returned by operator construction and root analysis.
var (
	// ErrEmptyOperator indicates an operator with no nonzero coefficient.
	ErrEmptyOperator = errors.New("dop: operator has no nonzero coefficient")

	// ErrOrderZero indicates an operator of order zero; a differential
	// equation needs at least one derivative term.
	ErrOrderZero = errors.New("dop: operator must have order at least 1")

	// ErrNoNonzeroRoot indicates that a polynomial whose smallest nonzero
	// root modulus was requested has no nonzero root at all.
	ErrNoNonzeroRoot = errors.New("dop: polynomial has no nonzero root")
)
