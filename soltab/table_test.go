// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"testing"

	"cogentcore.org/solview/base/errors"
	"cogentcore.org/solview/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	tb := phaseTable()
	assert.Equal(t, "sol000/phase000", tb.Key())
	assert.Equal(t, []string{"ant", "time", "freq", "pol"}, tb.AxisNames())
	assert.NoError(t, tb.Validate())

	ax, ok := tb.Axis(AxisFreq)
	assert.True(t, ok)
	assert.Equal(t, 2, ax.Len())
	assert.Equal(t, "1.2e+08", ax.Label(0))
	_, ok = tb.Axis(AxisDir)
	assert.False(t, ok)

	tb.Solset = ""
	assert.Equal(t, "phase000", tb.Key())
}

func TestTableValidate(t *testing.T) {
	tb := phaseTable()
	tb.Values = nil
	assert.Error(t, tb.Validate())

	tb = phaseTable()
	tb.Axes = tb.Axes[:3]
	assert.ErrorIs(t, tb.Validate(), tensor.ErrShapeMismatch)

	tb = phaseTable()
	tb.Axes[1] = NewAxis(AxisTime, 0, 10)
	assert.ErrorIs(t, tb.Validate(), tensor.ErrShapeMismatch)

	tb = phaseTable()
	tb.Weights = flagWeights(4, 3, 2)
	assert.ErrorIs(t, tb.Validate(), tensor.ErrShapeMismatch)

	tb = phaseTable()
	tb.Weights = nil
	assert.NoError(t, tb.Validate())
}

func TestAntennaIndex(t *testing.T) {
	tb := phaseTable()
	i, err := tb.AntennaIndex("CS003HBA0")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = tb.AntennaIndex("cs003hba0")
	var me *MissingReferenceAntennaError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "cs003hba0", me.Name)
	assert.Equal(t, "CS003HBA0", me.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "CS003HBA0"?`)
	assert.False(t, IsRecoverable(err))

	_, err = tb.AntennaIndex("zzz")
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "", me.Suggestion)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestAxis(t *testing.T) {
	ax := NewLabelAxis(AxisPol, "XX", "YY")
	assert.Equal(t, 2, ax.Len())
	assert.Equal(t, "YY", ax.Label(1))
	assert.Equal(t, []float64{0, 1}, ax.Floats())

	ax = NewAxis(AxisTime, 1.5, 2.5)
	fs := ax.Floats()
	fs[0] = 100
	assert.Equal(t, 1.5, ax.Values[0])
}
