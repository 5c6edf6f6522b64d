// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package circuit

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawBell(t *testing.T) {
	c := New(2, 0).H(0).CX(0, 1)
	want := strings.Join([]string{
		"q0: ─H──■──",
		"q1: ────⊕──",
	}, "\n")
	assert.Equal(t, want, c.String())
}

func TestDrawMeasure(t *testing.T) {
	c := New(2, 1).H(1).Measure(0, 0)
	lines := strings.Split(c.String(), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "c: 1/"))
	assert.Contains(t, lines[0], "M")
	assert.Contains(t, lines[1], "╫")
	assert.Contains(t, lines[2], "╩0")
}

func TestDrawLabels(t *testing.T) {
	c := New(3, 0).RY(math.Pi/3, 2).CCX(0, 2, 1).SWAP(0, 2).Barrier()
	s := c.String()
	assert.Contains(t, s, "Ry(π/3)")
	assert.Contains(t, s, "⊕")
	assert.Contains(t, s, "░")
	assert.Contains(t, s, "x")

	// all rows have the same visible width
	lines := strings.Split(s, "\n")
	for _, l := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)))
	}
}

func TestFormatAngle(t *testing.T) {
	testCases := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{math.Pi, "π"},
		{-math.Pi, "-π"},
		{math.Pi / 3, "π/3"},
		{2 * math.Pi / 4, "π/2"},
		{-3 * math.Pi / 4, "-3π/4"},
		{2 * math.Pi, "2π"},
		{0.5, "0.5"},
		{1.23456, "1.23"},
	}
	for _, tc := range testCases {
		t.Run(tc.out, func(t *testing.T) {
			assert.Equal(t, tc.out, FormatAngle(tc.in))
		})
	}
}
