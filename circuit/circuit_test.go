// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"qcirc/core"
)

func TestBuilderErrors(t *testing.T) {
	testCases := []struct {
		name  string
		build func() *Circuit
		err   bool
	}{
		{"ok", func() *Circuit { return New(2, 1).H(0).CX(0, 1).Measure(1, 0) }, false},
		{"no qubits", func() *Circuit { return New(0, 0) }, true},
		{"negative clbits", func() *Circuit { return New(1, -1) }, true},
		{"qubit out of range", func() *Circuit { return New(1, 0).X(1) }, true},
		{"same qubit twice", func() *Circuit { return New(2, 0).CX(1, 1) }, true},
		{"toffoli out of range", func() *Circuit { return New(3, 0).CCX(0, 1, 3) }, true},
		{"clbit out of range", func() *Circuit { return New(1, 1).Measure(0, 1) }, true},
		{"measure without clbits", func() *Circuit { return New(1, 0).Measure(0, 0) }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Err()
			if tc.err {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestFirstErrorIsKept(t *testing.T) {
	c := New(1, 1).X(3).H(5)
	assert.ErrorContains(t, c.Err(), "qubit 3")
	assert.Len(t, c.Ops, 0)
}

func TestAppendValidation(t *testing.T) {
	c := New(2, 1)
	testCases := []Op{
		{Gate: core.InvalidGate, Qubits: []int{0}},
		{Gate: core.RY, Qubits: []int{0}},
		{Gate: core.H, Qubits: []int{0}, Params: []float64{1}},
		{Gate: core.H, Qubits: []int{0, 1}},
		{Gate: core.H, Qubits: []int{0}, Clbits: []int{0}},
		{Gate: core.Barrier},
		{Gate: core.Measure, Qubits: []int{0}},
	}
	for i, op := range testCases {
		t.Run(fmt.Sprintf("%d/%v", i, op.Gate), func(t *testing.T) {
			err := c.Append(op)
			assert.True(t, errors.Is(err, ErrInvalidOp))
		})
	}
	assert.Len(t, c.Ops, 0)

	err := c.Append(Op{Gate: core.Measure, Qubits: []int{0}, Clbits: []int{4}})
	assert.True(t, errors.Is(err, core.ErrIndexOutOfRange))
}

func TestMeasureAll(t *testing.T) {
	c := New(3, 0).RY(math.Pi/3, 2).H(1).X(0).MeasureAll()
	assert.Nil(t, c.Err())
	assert.Equal(t, 3, c.NumClbits)
	assert.Equal(t, 3, c.Measured())

	// barrier then one measurement per qubit
	ops := c.Ops[3:]
	assert.Equal(t, core.Barrier, ops[0].Gate)
	assert.Equal(t, []int{0, 1, 2}, ops[0].Qubits)
	for q := 0; q < 3; q++ {
		assert.Equal(t, core.Measure, ops[q+1].Gate)
		assert.Equal(t, []int{q}, ops[q+1].Qubits)
		assert.Equal(t, []int{q}, ops[q+1].Clbits)
	}
}

func TestMeasureAllAppendsClbits(t *testing.T) {
	c := New(2, 1).Measure(0, 0).MeasureAll()
	assert.Nil(t, c.Err())
	assert.Equal(t, 3, c.NumClbits)
	last := c.Ops[len(c.Ops)-1]
	assert.Equal(t, []int{2}, last.Clbits)
}

func TestClone(t *testing.T) {
	c := New(2, 0).Named("bell").H(0).CX(0, 1)
	d := c.Clone()
	d.MeasureAll()
	d.Ops[0].Qubits[0] = 1

	assert.Equal(t, "bell", d.Name)
	assert.Equal(t, 0, c.NumClbits)
	assert.Len(t, c.Ops, 2)
	assert.Equal(t, []int{0}, c.Ops[0].Qubits)
	assert.Len(t, d.Ops, 5)
}

func TestTerminalMeasurements(t *testing.T) {
	assert.True(t, New(2, 0).H(0).CX(0, 1).MeasureAll().TerminalMeasurements())
	assert.True(t, New(1, 0).H(0).TerminalMeasurements())
	assert.False(t, New(1, 1).H(0).Measure(0, 0).H(0).TerminalMeasurements())
	assert.True(t, New(1, 1).H(0).Measure(0, 0).Barrier().TerminalMeasurements())
}

func TestWithoutMeasurements(t *testing.T) {
	c := New(1, 1).H(0).Measure(0, 0)
	u := c.WithoutMeasurements()
	assert.Equal(t, 0, u.Measured())
	assert.Len(t, u.Ops, 1)
	assert.Equal(t, 1, u.NumClbits)
	assert.Equal(t, 1, c.Measured())
}
