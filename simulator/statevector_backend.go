// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package simulator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"qcirc/circuit"
	"qcirc/core"
)

// statevectorBackend runs a single trajectory and returns the final state.
// Measurements in the circuit collapse the state.
type statevectorBackend struct{}

func (statevectorBackend) Name() string {
	return "statevector_simulator"
}

func (b statevectorBackend) Run(ctx context.Context, c *circuit.Circuit, opts Options) (*Result, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		ts   = time.Now()
		seed = seedOf(opts)
		rng  = rand.New(rand.NewSource(seed))
	)
	sv, reg, err := runOnce(c, rng)
	if err != nil {
		return nil, err
	}
	res := &Result{
		JobID:       uuid.NewString(),
		Backend:     b.Name(),
		Shots:       1,
		Seed:        seed,
		Counts:      core.Counts{},
		Statevector: sv,
	}
	if c.NumClbits > 0 {
		res.Counts[reg.String()] = 1
		if opts.Memory {
			res.Memory = []string{reg.String()}
		}
	}
	res.Duration = time.Since(ts)
	return res, nil
}
