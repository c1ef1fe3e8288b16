// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach the constructor name
// with %w wrapping and never stringify parameters into the sentinel itself.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such as
// a nil Constructor or a failed core insertion.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates ByName received a topology name it does not know.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
