// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import "strings"

// Gate represents the kinds of operations a circuit can contain.
type Gate int

const (
	// InvalidGate represents an unknown operation
	InvalidGate Gate = iota
	// H is the Hadamard gate
	H
	// X is the Pauli-X (NOT) gate
	X
	// Y is the Pauli-Y gate
	Y
	// Z is the Pauli-Z gate
	Z
	// S is the phase gate sqrt(Z)
	S
	// SDG is the adjoint of S
	SDG
	// T is the pi/8 gate sqrt(S)
	T
	// TDG is the adjoint of T
	TDG
	// RX is a rotation around the X axis
	RX
	// RY is a rotation around the Y axis
	RY
	// RZ is a rotation around the Z axis
	RZ
	// P is a phase shift
	P
	// CX is the controlled NOT
	CX
	// CY is the controlled Y
	CY
	// CZ is the controlled Z
	CZ
	// SWAP exchanges two qubits
	SWAP
	// CCX is the Toffoli gate
	CCX
	// Barrier separates sections of a circuit and has no effect on the state
	Barrier
	// Measure reads a qubit into a classical bit
	Measure
)

type gateInfo struct {
	name   string
	qubits int // -1 means any number
	params int
}

var gates = map[Gate]gateInfo{
	H:       {"h", 1, 0},
	X:       {"x", 1, 0},
	Y:       {"y", 1, 0},
	Z:       {"z", 1, 0},
	S:       {"s", 1, 0},
	SDG:     {"sdg", 1, 0},
	T:       {"t", 1, 0},
	TDG:     {"tdg", 1, 0},
	RX:      {"rx", 1, 1},
	RY:      {"ry", 1, 1},
	RZ:      {"rz", 1, 1},
	P:       {"p", 1, 1},
	CX:      {"cx", 2, 0},
	CY:      {"cy", 2, 0},
	CZ:      {"cz", 2, 0},
	SWAP:    {"swap", 2, 0},
	CCX:     {"ccx", 3, 0},
	Barrier: {"barrier", -1, 0},
	Measure: {"measure", 1, 0},
}

var aliases = map[string]Gate{
	"cnot":    CX,
	"toffoli": CCX,
	"u1":      P,
}

// ParseGate returns the gate with the given (case insensitive) name.
func ParseGate(s string) Gate {
	s = strings.ToLower(strings.TrimSpace(s))
	if g, ok := aliases[s]; ok {
		return g
	}
	for g, info := range gates {
		if info.name == s {
			return g
		}
	}
	return InvalidGate
}

// String returns the lower-case OpenQASM name of the gate.
func (g Gate) String() string {
	if info, ok := gates[g]; ok {
		return info.name
	}
	return "invalid"
}

// Qubits returns the number of qubits the gate acts on, or -1 if variadic.
func (g Gate) Qubits() int {
	return gates[g].qubits
}

// Params returns the number of angle parameters of the gate.
func (g Gate) Params() int {
	return gates[g].params
}

// Controls returns how many of the leading qubits are controls.
func (g Gate) Controls() int {
	switch g {
	case CX, CY, CZ:
		return 1
	case CCX:
		return 2
	default:
		return 0
	}
}

// Unitary reports whether the gate transforms the state vector.
func (g Gate) Unitary() bool {
	return g != Barrier && g != Measure && g != InvalidGate
}
