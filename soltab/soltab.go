// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package soltab normalizes calibration solution tables into a canonical
// axis order and extracts 1D and 2D slices from them for plotting.
//
// A [Table] may store its axes in any order. Selecting it into a [Cache]
// classifies it by name and declared type, computes its canonical order
// (time, then freq when the kind has one, then ant, then pol and dir when
// present) and transposes values and weights into that order once.
// [Extract1D] and [Extract2D] then read lines and waterfalls from the
// cached [Entry] for a [Selection], referencing phases against the
// reference antenna and wrapping them into [-π, π).
package soltab
