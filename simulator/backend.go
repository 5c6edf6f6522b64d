// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package simulator contains the backends that execute circuits: an exact
// state vector simulator and shot-based samplers built on top of it.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qcirc/circuit"
	"qcirc/core"
)

// Backend runs a circuit and returns its result.
type Backend interface {
	Run(ctx context.Context, c *circuit.Circuit, opts Options) (*Result, error)
	Name() string
}

// Options control a run. Zero values select backend defaults.
type Options struct {
	// Shots is the number of executions; 0 means the backend default.
	Shots int
	// Seed for the random number generators; negative means time-seeded.
	Seed int64
	// Workers is the number of goroutines sampling shots; 0 means 1.
	Workers int
	// Memory keeps the outcome of every shot in Result.Memory.
	Memory bool
}

// Result is the outcome of one run.
type Result struct {
	JobID       string
	Backend     string
	Shots       int
	Seed        int64
	Counts      core.Counts
	Memory      []string
	Statevector *Statevector
	Duration    time.Duration
}

// ID identifies a backend.
type ID int

const (
	// UnknownID backend
	UnknownID ID = iota
	// StatevectorID runs one trajectory and keeps the final state
	StatevectorID
	// QasmID samples shots
	QasmID
	// BasicID samples shots one trajectory at a time on a single goroutine
	BasicID
	// MockID returns a canned result
	MockID
)

var idNames = map[ID]string{
	StatevectorID: "statevector",
	QasmID:        "qasm",
	BasicID:       "basic",
	MockID:        "mock",
}

// ParseID parses a backend name. The long names used by common simulation
// toolkits ("qasm_simulator", ...) are accepted as well.
func ParseID(s string) ID {
	switch s {
	case "statevector", "statevector_simulator":
		return StatevectorID
	case "qasm", "qasm_simulator":
		return QasmID
	case "basic", "basic_simulator":
		return BasicID
	case "mock":
		return MockID
	default:
		return UnknownID
	}
}

func (id ID) String() string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return "unknown"
}

var (
	// ErrUnknownBackend is returned by New for UnknownID.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrNoMeasurements is returned by sampling backends for circuits without measurements.
	ErrNoMeasurements = errors.New("circuit has no measurements")
)

// New returns the backend identified by id.
func New(id ID) (Backend, error) {
	switch id {
	case StatevectorID:
		return statevectorBackend{}, nil
	case QasmID:
		return &sampler{name: "qasm_simulator", defaultShots: DefaultShots}, nil
	case BasicID:
		return &sampler{name: "basic_simulator", defaultShots: DefaultShots, reference: true}, nil
	case MockID:
		return GetMock(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, id)
	}
}

// DefaultShots is the shot count of sampling backends when none is given.
const DefaultShots = 1024

// Evolve applies the unitary part of c to |0...0>, skipping measurements.
func Evolve(c *circuit.Circuit) (*Statevector, error) {
	sv := NewStatevector(c.NumQubits)
	for _, op := range c.Ops {
		if op.Gate == core.Measure {
			continue
		}
		if err := sv.Apply(op); err != nil {
			return nil, err
		}
	}
	return sv, nil
}

func validate(c *circuit.Circuit) error {
	if c == nil {
		return errors.New("nil circuit")
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("invalid circuit: %w", err)
	}
	if c.NumQubits > maxQubits {
		return fmt.Errorf("%d qubits exceed the simulator limit of %d", c.NumQubits, maxQubits)
	}
	return nil
}

const maxQubits = 24

func seedOf(opts Options) int64 {
	if opts.Seed < 0 {
		return time.Now().UnixNano()
	}
	return opts.Seed
}
