// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package programs

import (
	"fmt"
	"math"

	"qcirc/circuit"
	"qcirc/core"
	"qcirc/simulator"
)

// Superposition puts a single qubit into equal superposition, samples it
// and shows the state before measurement.
var Superposition = &Program{
	Name:  "superposition",
	Short: "Single-qubit superposition with a Hadamard gate",
	Long: `Applies H to one qubit and measures it. The counts are close to 50/50
and the pre-measurement state points along +x on the Bloch sphere.`,
	Build: func(Params) (*circuit.Circuit, error) {
		c := circuit.New(1, 1).Named("superposition").
			H(0).
			Measure(0, 0)
		return c, c.Err()
	},
	Steps: []Step{
		{Kind: Draw},
		{Kind: Counts, Backend: simulator.QasmID},
		{Kind: Statevector},
	},
	Shots: 1000,
	Expected: func(Params) map[string]float64 {
		return map[string]float64{"0": 0.5, "1": 0.5}
	},
}

// Bell entangles two qubits and samples the correlated outcomes.
var Bell = &Program{
	Name:  "bell",
	Short: "Bell state creation and measurement",
	Long: `Prepares (|00> + |11>)/sqrt(2) with H and CX, prints the state and the
Bloch vectors of both qubits, then measures all qubits.`,
	Build: func(Params) (*circuit.Circuit, error) {
		c := circuit.New(2, 0).Named("bell").
			H(0).
			CX(0, 1)
		return c, c.Err()
	},
	Steps: []Step{
		{Kind: Draw},
		{Kind: Statevector},
		{Kind: MeasureAll},
		{Kind: Counts, Backend: simulator.QasmID},
	},
	Expected: func(Params) map[string]float64 {
		return map[string]float64{"00": 0.5, "11": 0.5}
	},
}

// StatePrep prepares three qubits with the target probabilities
// 3/8, 3/8, 1/8, 1/8 on 001, 011, 101, 111.
var StatePrep = &Program{
	Name:  "stateprep",
	Short: "Three-qubit state preparation with target probabilities",
	Long: `Biases qubit 2 with Ry(pi/3), puts qubit 1 into superposition and sets
qubit 0 to |1>. Expected: 37.5% 001, 37.5% 011, 12.5% 101, 12.5% 111.`,
	Build: func(Params) (*circuit.Circuit, error) {
		c := circuit.New(3, 0).Named("stateprep").
			RY(math.Pi/3, 2).
			H(1).
			X(0).
			MeasureAll()
		return c, c.Err()
	},
	Steps: []Step{
		{Kind: Draw},
		{Kind: Counts, Backend: simulator.QasmID},
	},
	Shots: 1024,
	Expected: func(Params) map[string]float64 {
		return map[string]float64{
			"001": 3.0 / 8,
			"011": 3.0 / 8,
			"101": 1.0 / 8,
			"111": 1.0 / 8,
		}
	},
}

// Adder qubits and classical bits.
const (
	adderA     = 0
	adderB     = 1
	adderSum   = 2
	adderCarry = 3

	sumBit   = 0
	carryBit = 1
)

// Adder adds two input bits into a SUM and a CARRY-OUT bit.
var Adder = &Program{
	Name:  "adder",
	Short: "Two-bit adder computing SUM and CARRY-OUT",
	Long: `Qubits 0 and 1 hold the inputs a and b. CX gates compute SUM = a XOR b on
qubit 2 and a Toffoli computes CARRY-OUT = a AND b on qubit 3. SUM is
measured into c0 and CARRY-OUT into c1.`,
	Params: []Param{
		{Name: "a", Default: 1, Usage: "first input bit", Values: []int{0, 1}},
		{Name: "b", Default: 1, Usage: "second input bit", Values: []int{0, 1}},
	},
	Build: func(ps Params) (*circuit.Circuit, error) {
		c := circuit.New(4, 2).Named("adder")
		var inputs []int
		if ps["a"] == 1 {
			inputs = append(inputs, adderA)
		}
		if ps["b"] == 1 {
			inputs = append(inputs, adderB)
		}
		if len(inputs) > 0 {
			c.X(inputs...)
		}
		c.Barrier().
			CX(adderA, adderSum).
			CX(adderB, adderSum).
			CCX(adderA, adderB, adderCarry).
			Barrier().
			Measure(adderSum, sumBit).
			Measure(adderCarry, carryBit)
		return c, c.Err()
	},
	Steps: []Step{
		{Kind: Draw},
		{Kind: Counts, Backend: simulator.BasicID},
		{Kind: Decode},
	},
	Shots: 1,
	Expected: func(ps Params) map[string]float64 {
		a, b := ps["a"], ps["b"]
		return map[string]float64{fmt.Sprintf("%d%d", a&b, a^b): 1}
	},
	Names: core.Assignment{
		{Name: "SUM", Index: sumBit},
		{Name: "CARRY-OUT", Index: carryBit},
	},
}

func init() {
	Register(Superposition)
	Register(Bell)
	Register(StatePrep)
	Register(Adder)
}
