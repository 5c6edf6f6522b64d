// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package programs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"qcirc/circuit"
	"qcirc/core"
	"qcirc/logger"
	"qcirc/report"
	"qcirc/simulator"
	"qcirc/stats"
)

// ErrVerification is returned by Run when the final counts are not within
// tolerance of the expected distribution.
var ErrVerification = errors.New("verification failed")

// DefaultTolerance is the maximum deviation per outcome accepted by Verify.
const DefaultTolerance = 0.05

// Env is the environment in which a program runs.
type Env struct {
	// Backend returns the backend for an ID; nil means simulator.New.
	Backend func(simulator.ID) (simulator.Backend, error)
	// Out receives the rendered results; nil means the logger output.
	Out io.Writer
	// Options passed to every backend. Options.Shots overrides the
	// program's shots when positive.
	Options simulator.Options
	// Override replaces the backend of Counts steps unless UnknownID.
	Override simulator.ID
	// Params of the program; missing ones take their defaults.
	Params Params

	Plot      bool
	Width     int
	Verify    bool
	Tolerance float64
}

// StepResult is the outcome of one backend run.
type StepResult struct {
	Step   Step
	Result *simulator.Result
}

// Report summarizes a program run.
type Report struct {
	Program string
	Params  Params
	// Circuit is the circuit after the last step.
	Circuit *circuit.Circuit
	Results []StepResult
	// Counts of the last Counts step.
	Counts  core.Counts
	Decoded map[string]string
	// Comparison is set when the run was verified.
	Comparison *stats.Comparison
	Timer      *stats.Timer
}

// Backend returns the name of the backend of the last Counts step.
func (r *Report) Backend() string {
	for i := len(r.Results) - 1; i >= 0; i-- {
		if r.Results[i].Step.Kind == Counts {
			return r.Results[i].Result.Backend
		}
	}
	return ""
}

// Shots returns the shots of the last Counts step.
func (r *Report) Shots() int {
	return r.Counts.Total()
}

type runner struct {
	p   *Program
	env Env
	out io.Writer
	rep *Report
	c   *circuit.Circuit
}

// Run builds the circuit of p and executes its steps in order. The report
// is returned even when a step fails, holding what ran so far.
func Run(ctx context.Context, p *Program, env Env) (*Report, error) {
	params, err := p.resolve(env.Params)
	if err != nil {
		return nil, err
	}
	if env.Backend == nil {
		env.Backend = simulator.New
	}
	if env.Width <= 0 {
		env.Width = report.DefaultWidth
	}
	if env.Tolerance <= 0 {
		env.Tolerance = DefaultTolerance
	}
	r := &runner{
		p:   p,
		env: env,
		out: env.Out,
		rep: &Report{
			Program: p.Name,
			Params:  params,
			Timer:   stats.NewTimer(),
		},
	}
	if r.out == nil {
		r.out = logger.Writer()
	}

	if r.c, err = p.Build(params); err != nil {
		return r.rep, fmt.Errorf("%s: could not build circuit: %w", p.Name, err)
	}
	r.rep.Circuit = r.c
	logger.Debugf("program %s %v: %d qubits, %d clbits", p.Name, params, r.c.NumQubits, r.c.NumClbits)

	for i, s := range p.Steps {
		logger.Debugf("step %d: %v", i, s.Kind)
		if err := r.step(ctx, s); err != nil {
			return r.rep, fmt.Errorf("%s: step %v: %w", p.Name, s.Kind, err)
		}
	}
	r.rep.Circuit = r.c

	if env.Verify {
		return r.rep, r.verify(params)
	}
	return r.rep, nil
}

func (r *runner) step(ctx context.Context, s Step) error {
	switch s.Kind {
	case Draw:
		report.Section(r.out, "circuit")
		fmt.Fprintln(r.out, r.c.String())
	case MeasureAll:
		r.c = r.c.Clone().MeasureAll()
		return r.c.Err()
	case Statevector:
		res, err := r.run(ctx, simulator.StatevectorID, s, r.c.WithoutMeasurements())
		if err != nil {
			return err
		}
		if res.Statevector == nil {
			return fmt.Errorf("%s returned no statevector", res.Backend)
		}
		report.Section(r.out, "statevector")
		report.Statevector(r.out, res.Statevector)
		if r.env.Plot {
			report.Section(r.out, "bloch")
			report.Bloch(r.out, res.Statevector)
		}
	case Counts:
		id := s.Backend
		if r.env.Override != simulator.UnknownID {
			id = r.env.Override
		}
		res, err := r.run(ctx, id, s, r.c)
		if err != nil {
			return err
		}
		r.rep.Counts = res.Counts
		report.Section(r.out, "counts")
		report.Counts(r.out, res.Counts)
		if r.env.Plot {
			report.Histogram(r.out, res.Counts, r.env.Width)
		}
	case Decode:
		outcome, ok := r.rep.Counts.MostFrequent()
		if !ok {
			return errors.New("no counts to decode")
		}
		values, err := core.Decode(outcome, r.c.NumClbits, r.p.Names)
		if err != nil {
			return err
		}
		r.rep.Decoded = values
		report.Section(r.out, "decoded")
		report.Decoded(r.out, r.p.Names, values)
	default:
		return fmt.Errorf("unknown step %v", s.Kind)
	}
	return nil
}

func (r *runner) run(ctx context.Context, id simulator.ID, s Step, c *circuit.Circuit) (*simulator.Result, error) {
	b, err := r.env.Backend(id)
	if err != nil {
		return nil, err
	}
	opts := r.env.Options
	if opts.Shots <= 0 {
		opts.Shots = r.p.Shots
	}
	res, err := b.Run(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	r.rep.Timer.AddTime(b.Name(), res.Duration)
	r.rep.Results = append(r.rep.Results, StepResult{Step: s, Result: res})
	logger.Debugf("job %s on %s: %d shots in %v", res.JobID, res.Backend, res.Shots, res.Duration)
	return res, nil
}

func (r *runner) verify(params Params) error {
	if r.p.Expected == nil {
		logger.Warnf("%s: no expected distribution, skipping verification", r.p.Name)
		return nil
	}
	if r.rep.Counts == nil {
		logger.Warnf("%s: no counts, skipping verification", r.p.Name)
		return nil
	}
	expected := r.p.Expected(params)
	if err := stats.Normalize(expected); err != nil {
		return fmt.Errorf("%s: expected distribution: %w", r.p.Name, err)
	}
	cmp := stats.Compare(r.rep.Counts, expected)
	r.rep.Comparison = &cmp
	report.Section(r.out, "verify")
	fmt.Fprintf(r.out, "%v (tolerance %v)\n", cmp, r.env.Tolerance)
	if !cmp.Within(r.env.Tolerance) {
		return fmt.Errorf("%w: %v", ErrVerification, cmp)
	}
	return nil
}
