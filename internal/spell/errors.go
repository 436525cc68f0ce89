package spell

import "errors"

// ErrNegativeWeight indicates a weight below zero was supplied to WithWeight.
var ErrNegativeWeight = errors.New("weight must be non-negative")

// ErrUnweighted indicates an Alternative operand that carries no weight.
var ErrUnweighted = errors.New("alternative operands must be weighted")

// ErrEmptyDistribution indicates an alternative whose total weight is zero.
// It is detected at construction, never during sampling.
var ErrEmptyDistribution = errors.New("alternative total weight must be positive")

// ErrAlreadyBound indicates Bind was called on a self-reference that already
// has a target.
var ErrAlreadyBound = errors.New("self-reference is already bound")

// ErrUnboundReference indicates sampling reached a self-reference whose
// target was never bound.
var ErrUnboundReference = errors.New("self-reference has no bound target")

// ErrNoBranch indicates weighted selection matched no child despite a
// positive total weight. It signals a defect in the selection walk, not a
// recoverable condition.
var ErrNoBranch = errors.New("weighted selection matched no child")

// ErrDepthLimit indicates a sample exceeded the recursion depth ceiling,
// which happens when a self-referencing branch is selected with probability
// too close to one.
var ErrDepthLimit = errors.New("recursion depth limit exceeded")
