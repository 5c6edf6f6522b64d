// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"qcirc/circuit"
	"qcirc/core"
	"qcirc/logger"
)

// sampler executes shots. When all measurements are terminal the state is
// evolved once and outcomes are drawn from its distribution; otherwise every
// shot runs its own trajectory. A reference sampler always runs trajectories
// on a single goroutine.
type sampler struct {
	name         string
	defaultShots int
	reference    bool
}

func (s *sampler) Name() string {
	return s.name
}

// shotFunc runs one shot and returns the classical register as a bitstring.
type shotFunc func(rng *rand.Rand) (string, error)

func (s *sampler) Run(ctx context.Context, c *circuit.Circuit, opts Options) (*Result, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	if c.Measured() == 0 {
		return nil, fmt.Errorf("%s: %w", s.name, ErrNoMeasurements)
	}
	var (
		ts      = time.Now()
		shots   = opts.Shots
		workers = opts.Workers
		seed    = seedOf(opts)
	)
	if shots <= 0 {
		shots = s.defaultShots
	}
	if workers < 1 || s.reference {
		workers = 1
	}
	if workers > shots {
		workers = shots
	}

	shot, err := s.shotFunc(c)
	if err != nil {
		return nil, err
	}
	logger.Debugf("%s: %d shots on %d workers, seed %d", s.name, shots, workers, seed)

	var (
		counts = make([]core.Counts, workers)
		memory = make([][]string, workers)
	)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		n := shots / workers
		if w < shots%workers {
			n++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(w)*seedStride))
			counts[w] = core.Counts{}
			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out, err := shot(rng)
				if err != nil {
					return err
				}
				counts[w][out]++
				if opts.Memory {
					memory[w] = append(memory[w], out)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		JobID:   uuid.NewString(),
		Backend: s.name,
		Shots:   shots,
		Seed:    seed,
		Counts:  core.Counts{},
	}
	for w := range counts {
		res.Counts.Merge(counts[w])
		res.Memory = append(res.Memory, memory[w]...)
	}
	res.Duration = time.Since(ts)
	return res, nil
}

const seedStride = 7919

func (s *sampler) shotFunc(c *circuit.Circuit) (shotFunc, error) {
	if s.reference || !c.TerminalMeasurements() {
		return func(rng *rand.Rand) (string, error) {
			return trajectory(c, rng)
		}, nil
	}

	sv, err := Evolve(c)
	if err != nil {
		return nil, err
	}
	var (
		probs = sv.Probabilities()
		cum   = make([]float64, len(probs))
		total float64
	)
	for i, p := range probs {
		total += p
		cum[i] = total
	}
	return func(rng *rand.Rand) (string, error) {
		r := rng.Float64() * total
		// the first entry strictly above r; zero-probability states are
		// never selected because their entry equals the previous one
		idx := sort.Search(len(cum), func(i int) bool { return cum[i] > r })
		if idx == len(cum) {
			idx = len(cum) - 1
		}
		var (
			reg = core.NewRegister(c.NumClbits)
			err error
		)
		for _, op := range c.Ops {
			if op.Gate != core.Measure {
				continue
			}
			reg, err = reg.Set(idx&(1<<op.Qubits[0]) != 0, op.Clbits[0])
			if err != nil {
				return "", err
			}
		}
		return reg.String(), nil
	}, nil
}

// trajectory runs the circuit once, collapsing the state at every
// measurement, and returns the classical register.
func trajectory(c *circuit.Circuit, rng *rand.Rand) (string, error) {
	_, reg, err := runOnce(c, rng)
	if err != nil {
		return "", err
	}
	return reg.String(), nil
}

func runOnce(c *circuit.Circuit, rng *rand.Rand) (*Statevector, core.Register, error) {
	var (
		sv  = NewStatevector(c.NumQubits)
		reg = core.NewRegister(c.NumClbits)
		err error
	)
	for _, op := range c.Ops {
		if op.Gate != core.Measure {
			if err := sv.Apply(op); err != nil {
				return nil, reg, err
			}
			continue
		}
		bit := sv.Measure(op.Qubits[0], rng.Float64())
		if reg, err = reg.Set(bit == 1, op.Clbits[0]); err != nil {
			return nil, reg, err
		}
	}
	return sv, reg, nil
}
