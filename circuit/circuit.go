// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package circuit builds quantum circuits: a number of qubits and classical
// bits and an ordered list of operations on them.
package circuit

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"qcirc/core"
	"qcirc/logger"
)

// Op is one operation of a circuit. For controlled gates the controls come
// first in Qubits and the target last.
type Op struct {
	Gate   core.Gate
	Qubits []int
	Clbits []int
	Params []float64
}

// Circuit is an ordered list of operations over NumQubits qubits and
// NumClbits classical bits.
type Circuit struct {
	Name      string
	NumQubits int
	NumClbits int
	Ops       []Op

	err error
}

// ErrInvalidOp is wrapped by every validation error of Append.
var ErrInvalidOp = errors.New("invalid operation")

// New returns an empty circuit.
func New(qubits, clbits int) *Circuit {
	c := &Circuit{
		NumQubits: qubits,
		NumClbits: clbits,
	}
	if qubits < 1 {
		c.err = fmt.Errorf("circuit needs at least one qubit, got %d", qubits)
	}
	if clbits < 0 {
		c.err = fmt.Errorf("negative number of classical bits: %d", clbits)
	}
	return c
}

// Named sets the circuit name and returns c.
func (c *Circuit) Named(name string) *Circuit {
	c.Name = name
	return c
}

// Err returns the first error recorded by a builder method.
func (c *Circuit) Err() error {
	return c.err
}

// Append validates op and adds it to the circuit.
func (c *Circuit) Append(op Op) error {
	if err := c.check(op); err != nil {
		return fmt.Errorf("%w: %v %v: %w", ErrInvalidOp, op.Gate, op.Qubits, err)
	}
	c.Ops = append(c.Ops, op)
	return nil
}

func (c *Circuit) check(op Op) error {
	if op.Gate == core.InvalidGate {
		return errors.New("unknown gate")
	}
	if n := op.Gate.Qubits(); n >= 0 && len(op.Qubits) != n {
		return fmt.Errorf("expects %d qubits, got %d", n, len(op.Qubits))
	}
	if len(op.Qubits) == 0 {
		return errors.New("no qubits")
	}
	if len(op.Params) != op.Gate.Params() {
		return fmt.Errorf("expects %d parameters, got %d", op.Gate.Params(), len(op.Params))
	}
	seen := make(map[int]bool, len(op.Qubits))
	for _, q := range op.Qubits {
		if q < 0 || q >= c.NumQubits {
			return fmt.Errorf("qubit %d not in [0, %d)", q, c.NumQubits)
		}
		if seen[q] {
			return fmt.Errorf("qubit %d used twice", q)
		}
		seen[q] = true
	}
	switch {
	case op.Gate == core.Measure && len(op.Clbits) != 1:
		return fmt.Errorf("expects one classical bit, got %d", len(op.Clbits))
	case op.Gate != core.Measure && len(op.Clbits) != 0:
		return errors.New("only measurements write classical bits")
	}
	for _, b := range op.Clbits {
		if b < 0 || b >= c.NumClbits {
			return fmt.Errorf("%w: clbit %d not in [0, %d)", core.ErrIndexOutOfRange, b, c.NumClbits)
		}
	}
	return nil
}

func (c *Circuit) add(op Op) *Circuit {
	if c.err != nil {
		return c
	}
	if err := c.Append(op); err != nil {
		logger.Debugf("circuit %q: %v", c.Name, err)
		c.err = err
	}
	return c
}

func (c *Circuit) single(g core.Gate, qs []int) *Circuit {
	for _, q := range qs {
		c.add(Op{Gate: g, Qubits: []int{q}})
	}
	return c
}

// H applies a Hadamard to each given qubit.
func (c *Circuit) H(q ...int) *Circuit { return c.single(core.H, q) }

// X applies a NOT to each given qubit.
func (c *Circuit) X(q ...int) *Circuit { return c.single(core.X, q) }

// Y applies a Pauli-Y to each given qubit.
func (c *Circuit) Y(q ...int) *Circuit { return c.single(core.Y, q) }

// Z applies a Pauli-Z to each given qubit.
func (c *Circuit) Z(q ...int) *Circuit { return c.single(core.Z, q) }

// S applies the phase gate to each given qubit.
func (c *Circuit) S(q ...int) *Circuit { return c.single(core.S, q) }

// T applies the T gate to each given qubit.
func (c *Circuit) T(q ...int) *Circuit { return c.single(core.T, q) }

// RX rotates qubit q by theta around the X axis.
func (c *Circuit) RX(theta float64, q int) *Circuit {
	return c.add(Op{Gate: core.RX, Qubits: []int{q}, Params: []float64{theta}})
}

// RY rotates qubit q by theta around the Y axis.
func (c *Circuit) RY(theta float64, q int) *Circuit {
	return c.add(Op{Gate: core.RY, Qubits: []int{q}, Params: []float64{theta}})
}

// RZ rotates qubit q by theta around the Z axis.
func (c *Circuit) RZ(theta float64, q int) *Circuit {
	return c.add(Op{Gate: core.RZ, Qubits: []int{q}, Params: []float64{theta}})
}

// P shifts the phase of |1> on qubit q by lambda.
func (c *Circuit) P(lambda float64, q int) *Circuit {
	return c.add(Op{Gate: core.P, Qubits: []int{q}, Params: []float64{lambda}})
}

// CX flips target when control is |1>.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.add(Op{Gate: core.CX, Qubits: []int{control, target}})
}

// CY applies Y to target when control is |1>.
func (c *Circuit) CY(control, target int) *Circuit {
	return c.add(Op{Gate: core.CY, Qubits: []int{control, target}})
}

// CZ applies Z to target when control is |1>.
func (c *Circuit) CZ(control, target int) *Circuit {
	return c.add(Op{Gate: core.CZ, Qubits: []int{control, target}})
}

// SWAP exchanges qubits a and b.
func (c *Circuit) SWAP(a, b int) *Circuit {
	return c.add(Op{Gate: core.SWAP, Qubits: []int{a, b}})
}

// CCX flips target when both controls are |1>.
func (c *Circuit) CCX(c0, c1, target int) *Circuit {
	return c.add(Op{Gate: core.CCX, Qubits: []int{c0, c1, target}})
}

// Barrier spans the given qubits, or all of them if none is given.
func (c *Circuit) Barrier(q ...int) *Circuit {
	if len(q) == 0 {
		q = c.allQubits()
	}
	return c.add(Op{Gate: core.Barrier, Qubits: q})
}

// Measure reads qubit q into classical bit b.
func (c *Circuit) Measure(q, b int) *Circuit {
	return c.add(Op{Gate: core.Measure, Qubits: []int{q}, Clbits: []int{b}})
}

// MeasureAll adds a barrier, one new classical bit per qubit and measures
// qubit i into the i-th new classical bit.
func (c *Circuit) MeasureAll() *Circuit {
	if c.err != nil {
		return c
	}
	offset := c.NumClbits
	c.NumClbits += c.NumQubits
	c.Barrier()
	for q := 0; q < c.NumQubits; q++ {
		c.Measure(q, offset+q)
	}
	return c
}

func (c *Circuit) allQubits() []int {
	qs := make([]int, c.NumQubits)
	for i := range qs {
		qs[i] = i
	}
	return qs
}

// Measured returns the number of measurement operations.
func (c *Circuit) Measured() int {
	var n int
	for _, op := range c.Ops {
		if op.Gate == core.Measure {
			n++
		}
	}
	return n
}

// TerminalMeasurements reports whether every measurement comes after the
// last gate that changes the state. Such a circuit can be evolved once and
// then sampled.
func (c *Circuit) TerminalMeasurements() bool {
	measured := false
	for _, op := range c.Ops {
		switch {
		case op.Gate == core.Measure:
			measured = true
		case op.Gate.Unitary() && measured:
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	var out Circuit
	if err := copier.CopyWithOption(&out, c, copier.Option{DeepCopy: true}); err != nil {
		logger.Fatalf("could not clone circuit: %v", err)
	}
	out.err = c.err
	return &out
}

// WithoutMeasurements returns a copy of c with every measurement removed.
// Classical bits are kept so that names still resolve.
func (c *Circuit) WithoutMeasurements() *Circuit {
	out := c.Clone()
	ops := out.Ops[:0]
	for _, op := range out.Ops {
		if op.Gate != core.Measure {
			ops = append(ops, op)
		}
	}
	out.Ops = ops
	return out
}
