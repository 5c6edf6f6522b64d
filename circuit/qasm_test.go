// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package circuit

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQASMAdder(t *testing.T) {
	c := New(4, 2).Named("adder").X(0, 1).Barrier().
		CX(0, 2).CX(1, 2).CCX(0, 1, 3).Barrier().
		Measure(2, 0).Measure(3, 1)
	require.Nil(t, c.Err())

	want := `OPENQASM 2.0;
include "qelib1.inc";
// adder
qreg q[4];
creg c[2];
x q[0];
x q[1];
barrier q[0],q[1],q[2],q[3];
cx q[0],q[2];
cx q[1],q[2];
ccx q[0],q[1],q[3];
barrier q[0],q[1],q[2],q[3];
measure q[2] -> c[0];
measure q[3] -> c[1];
`
	assert.Equal(t, want, c.QASM())
	assert.Equal(t, want, QASMStringer{c}.String())
}

func TestQASMAngles(t *testing.T) {
	c := New(1, 0).RY(math.Pi/3, 0).RZ(-math.Pi, 0).RX(2*math.Pi/3, 0).P(0.25, 0)
	want := `OPENQASM 2.0;
include "qelib1.inc";
qreg q[1];
ry(pi/3) q[0];
rz(-pi) q[0];
rx(2*pi/3) q[0];
p(0.25) q[0];
`
	assert.Equal(t, want, c.QASM())
}

// Angles written to QASM read back through the YAML angle parser.
func TestQASMAngleRoundTrip(t *testing.T) {
	for _, theta := range []float64{math.Pi, -math.Pi / 2, 3 * math.Pi / 4, 0.125} {
		v, err := ParseAngle(qasmAngle(theta))
		assert.Nil(t, err)
		assert.InDelta(t, theta, v, 1e-12)
	}
	var buf bytes.Buffer
	buf.WriteString(qasmAngle(math.Pi / 8))
	assert.Equal(t, "pi/8", buf.String())
}
