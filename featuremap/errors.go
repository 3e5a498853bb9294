// SPDX-License-Identifier: MIT
package featuremap

import "errors"

var (
	// ErrNilSpace is returned by constructors for a nil space.
	ErrNilSpace = errors.New("featuremap: space must not be nil")

	// ErrNilSampler is returned by constructors for a nil density sampler.
	ErrNilSampler = errors.New("featuremap: density sampler must not be nil")

	// ErrPhaseCount is returned when the number of random phases is not
	// positive.
	ErrPhaseCount = errors.New("featuremap: number of random phases must be positive")

	// ErrEmptyBatch is returned by Evaluate on an empty input batch.
	ErrEmptyBatch = errors.New("featuremap: input batch must not be empty")

	// ErrInputShape is returned when an input row or matrix does not match
	// the space's point shape.
	ErrInputShape = errors.New("featuremap: input shape does not match the space")

	// ErrSamplerOutput is returned when the density sampler returns a batch
	// of the wrong size.
	ErrSamplerOutput = errors.New("featuremap: density sampler returned a wrong-sized batch")
)
