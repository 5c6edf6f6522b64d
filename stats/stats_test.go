// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"qcirc/core"
)

func TestCompare(t *testing.T) {
	expected := map[string]float64{"00": 0.5, "11": 0.5}

	c := Compare(core.Counts{"00": 50, "11": 50}, expected)
	assert.InDelta(t, 0, c.Distance, 1e-12)
	assert.True(t, c.Within(0.01))

	c = Compare(core.Counts{"00": 60, "11": 40}, expected)
	assert.InDelta(t, 0.1, c.Distance, 1e-12)
	assert.InDelta(t, 0.1, c.MaxDeviation, 1e-12)
	assert.Equal(t, "00", c.Worst)
	assert.False(t, c.Within(0.05))
	assert.True(t, c.Within(0.1))

	c = Compare(core.Counts{"00": 50, "01": 1, "11": 49}, expected)
	assert.Equal(t, []string{"01"}, c.Unexpected)
	assert.False(t, c.Within(1))
	assert.Contains(t, c.String(), "unexpected outcomes 01")
	assert.Equal(t, 100, c.Shots)
}

func TestCompareDisjoint(t *testing.T) {
	c := Compare(core.Counts{"1": 10}, map[string]float64{"0": 1})
	assert.InDelta(t, 1, c.Distance, 1e-12)
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(map[string]float64{"001": 0.375, "011": 0.375, "101": 0.125, "111": 0.125}))
	assert.NotNil(t, Normalize(map[string]float64{"0": 0.4}))
	assert.NotNil(t, Normalize(map[string]float64{"0": 1.5, "1": -0.5}))
}

func TestTimer(t *testing.T) {
	s := NewTimer()
	s.AddTime("qasm", 2*time.Millisecond)
	s.AddTime("qasm", 4*time.Millisecond)

	mean, sd := s.GetTime("qasm")
	assert.Equal(t, 3*time.Millisecond, mean)
	assert.Equal(t, time.Millisecond, sd)
	assert.Equal(t, 2, s.Count("qasm"))

	mean, sd = s.GetTime("none")
	assert.Zero(t, mean)
	assert.Zero(t, sd)
	assert.Contains(t, s.String(), "Mean time qasm: 3ms")
}
