// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package programs defines the demonstration programs of qcirc and the
// runner that executes their steps on simulation backends.
package programs

import (
	"fmt"
	"sort"

	"qcirc/circuit"
	"qcirc/core"
	"qcirc/simulator"
)

// StepKind is what a step does with the current circuit.
type StepKind int

const (
	// Draw prints the circuit diagram.
	Draw StepKind = iota
	// Statevector prints the state before any measurement.
	Statevector
	// Counts samples the circuit and prints the counts.
	Counts
	// MeasureAll measures every qubit into new classical bits.
	MeasureAll
	// Decode prints the named bits of the most frequent outcome.
	Decode
)

var stepNames = map[StepKind]string{
	Draw:        "draw",
	Statevector: "statevector",
	Counts:      "counts",
	MeasureAll:  "measure_all",
	Decode:      "decode",
}

func (k StepKind) String() string {
	if s, ok := stepNames[k]; ok {
		return s
	}
	return fmt.Sprintf("step(%d)", int(k))
}

// Step is one stage of a program.
type Step struct {
	Kind StepKind
	// Backend for Counts steps. The runner may override it.
	Backend simulator.ID
}

// Param is an integer input of a program.
type Param struct {
	Name    string
	Default int
	Usage   string
	// Values lists the accepted values; empty accepts any.
	Values []int
}

// Params are the values of a program's parameters by name.
type Params map[string]int

// Program is a named circuit with the steps that demonstrate it.
type Program struct {
	Name  string
	Short string
	Long  string

	Params []Param
	Build  func(Params) (*circuit.Circuit, error)
	Steps  []Step
	// Shots of Counts steps unless overridden.
	Shots int
	// Expected returns the distribution of the final counts. Nil means the
	// program cannot be verified.
	Expected func(Params) map[string]float64
	Names    core.Assignment
}

// Defaults returns the default parameter values of p.
func (p *Program) Defaults() Params {
	ps := Params{}
	for _, pa := range p.Params {
		ps[pa.Name] = pa.Default
	}
	return ps
}

// resolve fills missing values with defaults and rejects unknown or
// unaccepted values.
func (p *Program) resolve(ps Params) (Params, error) {
	out := p.Defaults()
	known := map[string]Param{}
	for _, pa := range p.Params {
		known[pa.Name] = pa
	}
	for k, v := range ps {
		pa, ok := known[k]
		if !ok {
			return nil, fmt.Errorf("%s: unknown parameter %q", p.Name, k)
		}
		if !pa.accepts(v) {
			return nil, fmt.Errorf("%s: parameter %s must be one of %v, got %d", p.Name, k, pa.Values, v)
		}
		out[k] = v
	}
	return out, nil
}

func (pa Param) accepts(v int) bool {
	if len(pa.Values) == 0 {
		return true
	}
	for _, a := range pa.Values {
		if a == v {
			return true
		}
	}
	return false
}

var registry = map[string]*Program{}

// Register adds p to the registry. Registering a name twice panics.
func Register(p *Program) {
	if _, has := registry[p.Name]; has {
		panic(fmt.Sprintf("program %q registered twice", p.Name))
	}
	registry[p.Name] = p
}

// Lookup returns the program with the given name.
func Lookup(name string) (*Program, bool) {
	p, ok := registry[name]
	return p, ok
}

// List returns all registered programs sorted by name.
func List() []*Program {
	out := make([]*Program, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// FromCircuitFile wraps a circuit read from a file into a program that
// draws it, samples it and decodes its named bits if there are any.
func FromCircuitFile(def *circuit.Definition) *Program {
	p := &Program{
		Name:  def.Circuit.Name,
		Short: "circuit loaded from file",
		Build: func(Params) (*circuit.Circuit, error) {
			return def.Circuit.Clone(), def.Circuit.Err()
		},
		Steps: []Step{
			{Kind: Draw},
			{Kind: Counts, Backend: simulator.QasmID},
		},
		Shots: def.Shots,
		Names: def.Names,
	}
	if len(def.Names) > 0 {
		p.Steps = append(p.Steps, Step{Kind: Decode})
	}
	if len(def.Expect) > 0 {
		p.Expected = func(Params) map[string]float64 {
			return def.Expect
		}
	}
	return p
}
