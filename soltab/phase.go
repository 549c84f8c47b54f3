// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// WrapPhase returns the principal value of phase v in [-π, π).
// Values already in range are returned unchanged, so that wrapping
// is idempotent.
func WrapPhase(v float64) float64 {
	if v >= -math.Pi && v < math.Pi {
		return v
	}
	w := math.Mod(v+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	w -= math.Pi
	if w >= math.Pi {
		w -= 2 * math.Pi
	}
	return w
}

// WrapPhases wraps each phase in vs in place.
func WrapPhases(vs []float64) {
	for i, v := range vs {
		vs[i] = WrapPhase(v)
	}
}

// ReferencePhase subtracts the reference antenna phases ref from
// the phases in dst, element-wise and in place.
func ReferencePhase(dst, ref []float64) {
	floats.Sub(dst, ref)
}
