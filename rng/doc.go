// SPDX-License-Identifier: MIT
// Package rng provides the functional random-state token threaded through
// every sampling operation in geomkern.
//
// What & Why
//
// Numeric pipelines that mix Monte-Carlo sampling with deterministic math
// need reproducibility: the same inputs and the same random state must give
// bit-identical outputs. Global mutable generators cannot guarantee that, so
// rng models randomness as an explicit value:
//
//	st := rng.NewState(42)
//	st, xs := st.Normal(100) // st is consumed, a successor is returned
//
// Every sampling call takes ownership of one State value and returns exactly
// one successor State. A State is never read without being advanced, and a
// stale State must not be reused for two logically independent draws — doing
// so replays identical randomness, which is a deliberate caller decision
// (deterministic replay), never an accident of shared mutable state.
//
// Implementation
//
// State is a (seed, counter) pair. Each draw derives a fresh PCG stream from
// the pair via a SplitMix64-style mix and advances the counter once. The PCG
// generator comes from golang.org/x/exp/rand, the source type gonum's
// distribution package is built against.
//
// Determinism
//
//   - Same State value + same call ⇒ bit-identical output and successor.
//   - Successive States derive disjoint streams; outputs differ.
package rng
