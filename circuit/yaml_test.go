// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package circuit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcirc/core"
)

const stateprepYAML = `
name: stateprep
qubits: 3
shots: 2048
ops:
  - gate: ry
    qubits: [2]
    params: [pi/3]
  - gate: h
    qubits: [1]
  - gate: x
    qubits: [0]
  - gate: measure_all
expect:
  "001": 0.375
  "011": 0.375
  "101": 0.125
  "111": 0.125
`

func TestLoadYAML(t *testing.T) {
	def, err := LoadYAML(strings.NewReader(stateprepYAML))
	require.Nil(t, err)

	want := New(3, 0).Named("stateprep").RY(math.Pi/3, 2).H(1).X(0).MeasureAll()
	require.Nil(t, want.Err())

	opts := []cmp.Option{
		cmpopts.IgnoreUnexported(Circuit{}),
		cmpopts.EquateEmpty(),
		cmpopts.EquateApprox(0, 1e-12),
	}
	if diff := cmp.Diff(want, def.Circuit, opts...); diff != "" {
		t.Errorf("circuit mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2048, def.Shots)
	assert.InDelta(t, 1.0, def.Expect["001"]+def.Expect["011"]+def.Expect["101"]+def.Expect["111"], 1e-12)
}

func TestLoadYAMLNames(t *testing.T) {
	src := `
qubits: 4
clbits: 2
ops:
  - {gate: x, qubits: [0]}
  - {gate: x, qubits: [1]}
  - {gate: barrier}
  - {gate: cnot, qubits: [0, 2]}
  - {gate: cx, qubits: [1, 2]}
  - {gate: toffoli, qubits: [0, 1, 3]}
  - {gate: measure, qubits: [2], clbits: [0]}
  - {gate: measure, qubits: [3], clbits: [1]}
names:
  - {name: SUM, clbit: 0}
  - {name: CARRY-OUT, clbit: 1}
`
	def, err := LoadYAML(strings.NewReader(src))
	require.Nil(t, err)
	assert.Equal(t, core.Assignment{{Name: "SUM", Index: 0}, {Name: "CARRY-OUT", Index: 1}}, def.Names)
	assert.Equal(t, core.Barrier, def.Circuit.Ops[2].Gate)
	assert.Equal(t, []int{0, 1, 2, 3}, def.Circuit.Ops[2].Qubits)
	assert.Equal(t, core.CCX, def.Circuit.Ops[5].Gate)
}

func TestLoadYAMLErrors(t *testing.T) {
	testCases := map[string]string{
		"unknown field": "qubits: 1\nfoo: 2\n",
		"unknown gate":  "qubits: 1\nops: [{gate: frob, qubits: [0]}]\n",
		"bad angle":     "qubits: 1\nops: [{gate: ry, qubits: [0], params: [tau]}]\n",
		"out of range":  "qubits: 1\nops: [{gate: h, qubits: [1]}]\n",
		"no qubits":     "qubits: 0\n",
		"bad name":      "qubits: 1\nclbits: 1\nnames: [{name: A, clbit: 1}]\n",
		"neg shots":     "qubits: 1\nshots: -1\n",
	}
	for name, src := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(src))
			assert.NotNil(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "c.yaml")
	require.Nil(t, os.WriteFile(fn, []byte("qubits: 1\nops: [{gate: h, qubits: [0]}]\n"), 0600))
	def, err := LoadFile(fn)
	require.Nil(t, err)
	assert.Equal(t, fn, def.Circuit.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestParseAngle(t *testing.T) {
	testCases := []struct {
		in  string
		out float64
		err bool
	}{
		{in: "0.5", out: 0.5},
		{in: "pi", out: math.Pi},
		{in: "π/3", out: math.Pi / 3},
		{in: "-pi/2", out: -math.Pi / 2},
		{in: "2*pi/3", out: 2 * math.Pi / 3},
		{in: " 3 * pi / 4 ", out: 3 * math.Pi / 4},
		{in: "2pi", err: true},
		{in: "pi/0", err: true},
		{in: "pi3", err: true},
		{in: "tau", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseAngle(tc.in)
			if tc.err {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.InDelta(t, tc.out, v, 1e-12)
		})
	}
}
