// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is, never on strings.
//
// Check order inside constructors:
//   - ErrTooFewVertices     (sizes first),
//   - ErrInvalidProbability (then probability ranges),
//   - ErrNeedRandSource     (then RNG presence for stochastic builders).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction failure not covered above
// (for example a nil Constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
