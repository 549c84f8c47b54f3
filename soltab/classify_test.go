// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name, typ string
		want      Kind
	}{
		{"amplitude000", "amplitude", KindGeneric},
		{"phase000", "phase", KindGeneric},
		{"clock000", "clock", KindNoFrequency},
		{"rotationmeasure000", "rotationmeasure", KindNoFrequency},
		{"RMextract", "rotationmeasure", KindNoFrequency},
		{"faraday000", "phase", KindNoFrequency},
		{"tec000", "tec", KindTEC},
		{"phase_offset000", "phase", KindScalarOffset},
		{"clocktec", "tec", KindNoFrequency},
		{"sol000", "clock", KindNoFrequency},
		{"sol001", "tec", KindTEC},
		{"Clock000", "amplitude", KindGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.name, tt.typ), tt.name)
	}
}

func TestClassify(t *testing.T) {
	cls := Classify("phase000", "phase", []string{"time", "freq", "ant", "pol"})
	assert.Equal(t, Classification{Kind: KindGeneric, SupportsFrequencyAxis: true, SupportsPhaseReferencing: true, Supports2D: true}, cls)

	cls = Classify("amplitude000", "amplitude", []string{"time", "freq", "ant"})
	assert.False(t, cls.SupportsPhaseReferencing)
	assert.True(t, cls.Supports2D)

	cls = Classify("clock000", "clock", []string{"time", "ant", "freq"})
	assert.False(t, cls.SupportsFrequencyAxis)
	assert.False(t, cls.Supports2D)

	// TEC capability depends on the axes the table actually has.
	cls = Classify("tec000", "tec", []string{"ant", "dir", "time"})
	assert.Equal(t, KindTEC, cls.Kind)
	assert.False(t, cls.SupportsFrequencyAxis)
	cls = Classify("tec000", "tec", []string{"ant", "freq", "time"})
	assert.True(t, cls.SupportsFrequencyAxis)
	assert.True(t, cls.Supports2D)

	cls = Classify("phase_offset000", "phase", []string{"time", "freq", "ant"})
	assert.True(t, cls.SupportsFrequencyAxis)
	assert.True(t, cls.SupportsPhaseReferencing)
	assert.False(t, cls.Supports2D)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "generic", KindGeneric.String())
	assert.Equal(t, "no-frequency", KindNoFrequency.String())
	assert.Equal(t, "tec", KindTEC.String())
	assert.Equal(t, "scalar-offset", KindScalarOffset.String())
}
