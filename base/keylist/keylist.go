// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list of values with
// a map from keys to indexes, for lookup by name while keeping
// the order in which items were added.
package keylist

import (
	"fmt"
	"slices"
)

// List is an ordered list of Values with parallel Keys.
// The zero value is ready to use.
type List[K comparable, V any] struct {

	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered slice of keys, in the same order as Values.
	Keys []K

	indexes map[K]int
}

// New returns a new empty [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Add appends val under key, returning an error
// if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// Set sets key to val, appending it if the key is new and
// replacing the value in place otherwise, like a Go map.
func (kl *List[K, V]) Set(key K, val V) {
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.Add(key, val)
}

// At returns the value for key and whether it was found.
func (kl *List[K, V]) At(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of key, or -1 if it is missing.
func (kl *List[K, V]) IndexByKey(key K) int {
	if idx, ok := kl.indexes[key]; ok {
		return idx
	}
	return -1
}

// DeleteByKey removes the item with key, returning false if it is missing.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	clear(kl.indexes)
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
	return true
}

// Reset removes all items.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}
