// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package simulator

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcirc/circuit"
	"qcirc/core"
)

const eps = 1e-9

func assertAmps(t *testing.T, want []complex128, sv *Statevector) {
	t.Helper()
	got := sv.Amplitudes()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), eps, "re[%d]", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), eps, "im[%d]", i)
	}
}

func evolve(t *testing.T, c *circuit.Circuit) *Statevector {
	t.Helper()
	require.Nil(t, c.Err())
	sv, err := Evolve(c)
	require.Nil(t, err)
	return sv
}

func TestSingleQubitGates(t *testing.T) {
	r := 1 / math.Sqrt2
	testCases := []struct {
		name string
		c    *circuit.Circuit
		want []complex128
	}{
		{"id", circuit.New(1, 0), []complex128{1, 0}},
		{"x", circuit.New(1, 0).X(0), []complex128{0, 1}},
		{"h", circuit.New(1, 0).H(0), []complex128{complex(r, 0), complex(r, 0)}},
		{"hh", circuit.New(1, 0).H(0).H(0), []complex128{1, 0}},
		{"xh", circuit.New(1, 0).X(0).H(0), []complex128{complex(r, 0), complex(-r, 0)}},
		{"y", circuit.New(1, 0).Y(0), []complex128{0, 1i}},
		{"xz", circuit.New(1, 0).X(0).Z(0), []complex128{0, -1}},
		{"xs", circuit.New(1, 0).X(0).S(0), []complex128{0, 1i}},
		{"xt", circuit.New(1, 0).X(0).T(0), []complex128{0, complex(r, r)}},
		{"ry(pi)", circuit.New(1, 0).RY(math.Pi, 0), []complex128{0, 1}},
		{"rx(pi)", circuit.New(1, 0).RX(math.Pi, 0), []complex128{0, -1i}},
		{"ry(pi/3)", circuit.New(1, 0).RY(math.Pi/3, 0), []complex128{complex(math.Sqrt(3)/2, 0), 0.5}},
		{"rz(pi)", circuit.New(1, 0).H(0).RZ(math.Pi, 0), []complex128{complex(0, -r), complex(0, r)}},
		{"p(pi)", circuit.New(1, 0).H(0).P(math.Pi, 0), []complex128{complex(r, 0), complex(-r, 0)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertAmps(t, tc.want, evolve(t, tc.c))
		})
	}
}

func TestBellState(t *testing.T) {
	r := complex(1/math.Sqrt2, 0)
	sv := evolve(t, circuit.New(2, 0).H(0).CX(0, 1))
	assertAmps(t, []complex128{r, 0, 0, r}, sv)

	// entangled qubits have no definite direction
	for q := 0; q < 2; q++ {
		x, y, z := sv.Bloch(q)
		assert.InDelta(t, 0, math.Sqrt(x*x+y*y+z*z), eps)
	}
}

func TestMultiQubitGates(t *testing.T) {
	// basis index uses qubit 0 as least significant bit
	testCases := []struct {
		c    *circuit.Circuit
		want int
	}{
		{circuit.New(2, 0).X(0).CX(0, 1), 0b11},
		{circuit.New(2, 0).X(1).CX(0, 1), 0b10},
		{circuit.New(2, 0).X(0).SWAP(0, 1), 0b10},
		{circuit.New(3, 0).X(0, 1).CCX(0, 1, 2), 0b111},
		{circuit.New(3, 0).X(0).CCX(0, 1, 2), 0b001},
		{circuit.New(4, 0).X(0, 1).CX(0, 2).CX(1, 2).CCX(0, 1, 3), 0b1011},
		{circuit.New(4, 0).X(0).CX(0, 2).CX(1, 2).CCX(0, 1, 3), 0b0101},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := evolve(t, tc.c).Probabilities()
			assert.InDelta(t, 1, p[tc.want], eps)
		})
	}

	sv := evolve(t, circuit.New(2, 0).X(0, 1).CZ(0, 1))
	assertAmps(t, []complex128{0, 0, 0, -1}, sv)

	sv = evolve(t, circuit.New(2, 0).X(0).CY(0, 1))
	assertAmps(t, []complex128{0, 0, 0, 1i}, sv)
}

func TestBloch(t *testing.T) {
	testCases := []struct {
		name    string
		c       *circuit.Circuit
		x, y, z float64
	}{
		{"zero", circuit.New(1, 0), 0, 0, 1},
		{"one", circuit.New(1, 0).X(0), 0, 0, -1},
		{"plus", circuit.New(1, 0).H(0), 1, 0, 0},
		{"minus", circuit.New(1, 0).X(0).H(0), -1, 0, 0},
		{"plus-i", circuit.New(1, 0).H(0).S(0), 0, 1, 0},
		{"ry(pi/3)", circuit.New(1, 0).RY(math.Pi/3, 0), math.Sin(math.Pi / 3), 0, math.Cos(math.Pi / 3)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, z := evolve(t, tc.c).Bloch(0)
			assert.InDelta(t, tc.x, x, eps)
			assert.InDelta(t, tc.y, y, eps)
			assert.InDelta(t, tc.z, z, eps)
		})
	}
}

func TestMeasureCollapse(t *testing.T) {
	sv := evolve(t, circuit.New(2, 0).H(0).CX(0, 1))
	assert.Equal(t, 1, sv.Clone().Measure(0, 0.1))
	assert.Equal(t, 0, sv.Clone().Measure(0, 0.9))

	sv.Measure(0, 0.1)
	// the partner qubit follows
	assert.InDelta(t, 1, sv.Probability1(1), eps)
	assertAmps(t, []complex128{0, 0, 0, 1}, sv)

	// a certain outcome is never flipped
	one := evolve(t, circuit.New(1, 0).X(0))
	assert.Equal(t, 1, one.Measure(0, 0.999999))
}

func TestApplyErrors(t *testing.T) {
	sv := NewStatevector(1)
	assert.NotNil(t, sv.Apply(circuit.Op{Gate: core.Measure, Qubits: []int{0}}))
	assert.NotNil(t, sv.Apply(circuit.Op{Gate: core.H, Qubits: []int{3}}))
	assert.NotNil(t, sv.Apply(circuit.Op{Gate: core.RY, Qubits: []int{0}}))
	assert.NotNil(t, sv.Apply(circuit.Op{Gate: core.InvalidGate, Qubits: []int{0}}))
	assert.Nil(t, sv.Apply(circuit.Op{Gate: core.Barrier, Qubits: []int{0}}))
}

func TestStatevectorString(t *testing.T) {
	sv := evolve(t, circuit.New(1, 0).H(0))
	assert.Equal(t, "Statevector([0.70710678+0.00000000j, 0.70710678+0.00000000j],\n            dims=(2))", sv.String())
	assert.Equal(t, "01", NewStatevector(2).Label(1))
}
