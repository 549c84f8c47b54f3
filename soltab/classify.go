// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"slices"
	"strings"
)

// TypePhase is the declared type of phase solutions, the only type
// that is referenced against a reference antenna and wrapped.
const TypePhase = "phase"

// Kind is the solution kind of a table, which determines the axes it
// is expected to carry and how it can be plotted.
type Kind int32

const (
	// KindGeneric is an amplitude-like solution with a frequency axis.
	KindGeneric Kind = iota

	// KindNoFrequency is an angle-like solution without a frequency axis:
	// rotation measure, clock or faraday solutions.
	KindNoFrequency

	// KindTEC is a TEC solution, which may or may not carry a frequency
	// axis depending on the producer.
	KindTEC

	// KindScalarOffset is a scalar offset per antenna, direction and time,
	// which cannot be plotted in 2D.
	KindScalarOffset
)

func (k Kind) String() string {
	switch k {
	case KindNoFrequency:
		return "no-frequency"
	case KindTEC:
		return "tec"
	case KindScalarOffset:
		return "scalar-offset"
	}
	return "generic"
}

// nameRules are the table name substrings that determine the kind,
// checked in order with the first match winning. Producers of
// solution tables rely on this naming convention.
var nameRules = []struct {
	substr string
	kind   Kind
}{
	{"rotationmeasure", KindNoFrequency},
	{"RMextract", KindNoFrequency},
	{"clock", KindNoFrequency},
	{"faraday", KindNoFrequency},
	{"tec", KindTEC},
	{"phase_offset", KindScalarOffset},
}

// typeKinds are the declared types that determine the kind
// of a table whose name matches none of the nameRules.
var typeKinds = map[string]Kind{
	"rotationmeasure": KindNoFrequency,
	"clock":           KindNoFrequency,
	"faraday":         KindNoFrequency,
	"tec":             KindTEC,
}

// KindOf returns the kind of a table with the given name and declared type.
// Matching on the name is case-sensitive.
func KindOf(name, typ string) Kind {
	for _, r := range nameRules {
		if strings.Contains(name, r.substr) {
			return r.kind
		}
	}
	if k, ok := typeKinds[typ]; ok {
		return k
	}
	return KindGeneric
}

// Classification is the solution-type specific behavior of a table.
type Classification struct {

	// Kind is the solution kind.
	Kind Kind

	// SupportsFrequencyAxis is whether the table can be plotted
	// against frequency.
	SupportsFrequencyAxis bool

	// SupportsPhaseReferencing is whether values are referenced
	// against a reference antenna and wrapped.
	SupportsPhaseReferencing bool

	// Supports2D is whether a time-frequency waterfall can be extracted.
	Supports2D bool
}

// Classify returns the classification of a table with the given name,
// declared type and axis names. A TEC table supports the frequency axis
// only when it actually has one.
func Classify(name, typ string, axes []string) Classification {
	cls := Classification{
		Kind:                     KindOf(name, typ),
		SupportsPhaseReferencing: typ == TypePhase,
	}
	if cls.Kind != KindNoFrequency {
		cls.SupportsFrequencyAxis = slices.Contains(axes, AxisFreq)
	}
	cls.Supports2D = cls.SupportsFrequencyAxis && cls.Kind != KindScalarOffset
	return cls
}
