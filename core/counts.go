// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
	"strings"
)

// Counts maps measured bitstrings to the number of shots that produced them.
type Counts map[string]int

// Total returns the number of shots.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}
	return n
}

// Keys returns the outcomes in lexicographic order.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Probabilities returns the empirical frequency of every outcome.
func (c Counts) Probabilities() map[string]float64 {
	total := float64(c.Total())
	p := make(map[string]float64, len(c))
	if total == 0 {
		return p
	}
	for k, v := range c {
		p[k] = float64(v) / total
	}
	return p
}

// MostFrequent returns the outcome with the largest count. Ties are broken
// by the lexicographically smallest bitstring.
func (c Counts) MostFrequent() (string, bool) {
	var (
		best  string
		count = -1
	)
	for _, k := range c.Keys() {
		if c[k] > count {
			best, count = k, c[k]
		}
	}
	return best, count >= 0
}

// Merge adds the counts of o to c.
func (c Counts) Merge(o Counts) {
	for k, v := range o {
		c[k] += v
	}
}

// Width returns the common bitstring length or an error if keys disagree.
func (c Counts) Width() (int, error) {
	w := -1
	for k := range c {
		if w == -1 {
			w = len(k)
		} else if len(k) != w {
			return 0, fmt.Errorf("%w: counts mix widths %d and %d", ErrWidthMismatch, w, len(k))
		}
	}
	if w == -1 {
		return 0, nil
	}
	return w, nil
}

// String formats the counts as a dictionary, e.g. {"00": 510, "11": 514}.
func (c Counts) String() string {
	parts := make([]string, 0, len(c))
	for _, k := range c.Keys() {
		parts = append(parts, fmt.Sprintf("%q: %d", k, c[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
