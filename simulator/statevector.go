// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package simulator

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"qcirc/circuit"
	"qcirc/core"
)

// Statevector holds the 2^n amplitudes of an n-qubit state. Qubit 0 is the
// least significant bit of the basis index.
type Statevector struct {
	amps   []complex128
	qubits int
}

type matrix [2][2]complex128

var (
	sqrt1_2 = complex(1/math.Sqrt2, 0)

	fixed = map[core.Gate]matrix{
		core.H:   {{sqrt1_2, sqrt1_2}, {sqrt1_2, -sqrt1_2}},
		core.X:   {{0, 1}, {1, 0}},
		core.Y:   {{0, -1i}, {1i, 0}},
		core.Z:   {{1, 0}, {0, -1}},
		core.S:   {{1, 0}, {0, 1i}},
		core.SDG: {{1, 0}, {0, -1i}},
		core.T:   {{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}},
		core.TDG: {{1, 0}, {0, cmplx.Exp(-1i * math.Pi / 4)}},
		core.CX:  {{0, 1}, {1, 0}},
		core.CY:  {{0, -1i}, {1i, 0}},
		core.CZ:  {{1, 0}, {0, -1}},
		core.CCX: {{0, 1}, {1, 0}},
	}
)

func rotation(g core.Gate, theta float64) matrix {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	switch g {
	case core.RX:
		return matrix{{complex(c, 0), complex(0, -s)}, {complex(0, -s), complex(c, 0)}}
	case core.RY:
		return matrix{{complex(c, 0), complex(-s, 0)}, {complex(s, 0), complex(c, 0)}}
	case core.RZ:
		return matrix{{cmplx.Exp(complex(0, -theta/2)), 0}, {0, cmplx.Exp(complex(0, theta/2))}}
	default: // P
		return matrix{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
	}
}

// NewStatevector returns the all-zero state |0...0> of n qubits.
func NewStatevector(n int) *Statevector {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &Statevector{amps: amps, qubits: n}
}

// Qubits returns the number of qubits.
func (s *Statevector) Qubits() int {
	return s.qubits
}

// Amplitudes returns a copy of the amplitudes.
func (s *Statevector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// Clone returns a deep copy.
func (s *Statevector) Clone() *Statevector {
	return &Statevector{amps: s.Amplitudes(), qubits: s.qubits}
}

// Apply applies a unitary operation. Barriers are ignored and measurements
// are rejected; use Measure for those.
func (s *Statevector) Apply(op circuit.Op) error {
	for _, q := range op.Qubits {
		if q < 0 || q >= s.qubits {
			return fmt.Errorf("qubit %d not in [0, %d)", q, s.qubits)
		}
	}
	switch op.Gate {
	case core.Barrier:
		return nil
	case core.Measure:
		return fmt.Errorf("measurement is not unitary")
	case core.SWAP:
		s.swap(op.Qubits[0], op.Qubits[1])
		return nil
	case core.RX, core.RY, core.RZ, core.P:
		if len(op.Params) != 1 {
			return fmt.Errorf("%v expects one parameter", op.Gate)
		}
		s.apply(nil, op.Qubits[0], rotation(op.Gate, op.Params[0]))
		return nil
	}
	m, ok := fixed[op.Gate]
	if !ok {
		return fmt.Errorf("unsupported gate %v", op.Gate)
	}
	nc := op.Gate.Controls()
	if len(op.Qubits) != nc+1 {
		return fmt.Errorf("%v expects %d qubits, got %d", op.Gate, nc+1, len(op.Qubits))
	}
	s.apply(op.Qubits[:nc], op.Qubits[nc], m)
	return nil
}

// apply multiplies the amplitudes of target by m on the subspace where all
// controls are |1>.
func (s *Statevector) apply(controls []int, target int, m matrix) {
	var mask int
	for _, c := range controls {
		mask |= 1 << c
	}
	bit := 1 << target
	for i := range s.amps {
		if i&bit != 0 || i&mask != mask {
			continue
		}
		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

func (s *Statevector) swap(a, b int) {
	ba, bb := 1<<a, 1<<b
	for i := range s.amps {
		if i&ba != 0 && i&bb == 0 {
			j := i&^ba | bb
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Probability1 returns the probability of measuring qubit q as 1.
func (s *Statevector) Probability1(q int) float64 {
	var p float64
	bit := 1 << q
	for i, a := range s.amps {
		if i&bit != 0 {
			p += sqabs(a)
		}
	}
	return p
}

// Measure measures qubit q using r, uniform in [0, 1), collapses the state
// and returns the outcome.
func (s *Statevector) Measure(q int, r float64) int {
	p1 := s.Probability1(q)
	outcome, p := 0, 1-p1
	if r < p1 {
		outcome, p = 1, p1
	}
	if p < 1e-15 {
		// rounding picked an outcome that cannot happen
		outcome, p = 1-outcome, 1-p
	}
	norm := complex(1/math.Sqrt(p), 0)
	bit := 1 << q
	for i := range s.amps {
		if (i&bit != 0) == (outcome == 1) {
			s.amps[i] *= norm
		} else {
			s.amps[i] = 0
		}
	}
	return outcome
}

// Probabilities returns |a_i|^2 for every basis state.
func (s *Statevector) Probabilities() []float64 {
	p := make([]float64, len(s.amps))
	for i, a := range s.amps {
		p[i] = sqabs(a)
	}
	return p
}

// Bloch returns the Bloch vector of qubit q from its reduced density matrix.
// Its length is 1 for a qubit in a pure product state and less when the
// qubit is entangled with the rest.
func (s *Statevector) Bloch(q int) (x, y, z float64) {
	var rho01 complex128
	bit := 1 << q
	for i, a := range s.amps {
		if i&bit != 0 {
			z -= sqabs(a)
			continue
		}
		z += sqabs(a)
		rho01 += a * cmplx.Conj(s.amps[i|bit])
	}
	return 2 * real(rho01), -2 * imag(rho01), z
}

// Label returns the basis state i as a bitstring, qubit 0 rightmost.
func (s *Statevector) Label(i int) string {
	return core.RegisterFromIndex(uint64(i), s.qubits).String()
}

func (s *Statevector) String() string {
	parts := make([]string, len(s.amps))
	for i, a := range s.amps {
		parts[i] = formatComplex(a)
	}
	dims := make([]string, s.qubits)
	for i := range dims {
		dims[i] = "2"
	}
	return fmt.Sprintf("Statevector([%s],\n            dims=(%s))",
		strings.Join(parts, ", "), strings.Join(dims, ", "))
}

func formatComplex(a complex128) string {
	re, im := clean(real(a)), clean(imag(a))
	return fmt.Sprintf("%.8f%+.8fj", re, im)
}

// clean rounds away floating point noise so that -0 and 1e-17 print as 0.
func clean(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}

func sqabs(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}
