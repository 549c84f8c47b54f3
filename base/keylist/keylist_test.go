// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	var kl List[string, int]
	assert.Equal(t, 0, kl.Len())
	assert.NoError(t, kl.Add("b", 2))
	assert.NoError(t, kl.Add("a", 1))
	assert.Error(t, kl.Add("b", 3))
	assert.Equal(t, []string{"b", "a"}, kl.Keys)
	assert.Equal(t, []int{2, 1}, kl.Values)

	kl.Set("b", 20)
	kl.Set("c", 30)
	assert.Equal(t, []int{20, 1, 30}, kl.Values)
	v, ok := kl.At("c")
	assert.True(t, ok)
	assert.Equal(t, 30, v)
	_, ok = kl.At("z")
	assert.False(t, ok)
	assert.Equal(t, 2, kl.IndexByKey("c"))
	assert.Equal(t, -1, kl.IndexByKey("z"))

	assert.True(t, kl.DeleteByKey("b"))
	assert.False(t, kl.DeleteByKey("b"))
	assert.Equal(t, []string{"a", "c"}, kl.Keys)
	assert.Equal(t, 1, kl.IndexByKey("c"))

	kl.Reset()
	assert.Equal(t, 0, kl.Len())
	assert.Equal(t, -1, kl.IndexByKey("a"))

	var nl *List[string, int]
	assert.Equal(t, 0, nl.Len())
}
