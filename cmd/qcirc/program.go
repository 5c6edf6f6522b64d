// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"qcirc/circuit"
	"qcirc/logger"
	"qcirc/programs"
	"qcirc/report"
	"qcirc/simulator"
	"qcirc/tools"
)

func init() {
	for _, p := range programs.List() {
		rootCmd.AddCommand(programCmd(p))
	}
}

// programCmd creates a subcommand running p with one integer flag per
// program parameter.
func programCmd(p *programs.Program) *cobra.Command {
	params := make(map[string]*int, len(p.Params))
	cmd := &cobra.Command{
		Use:   p.Name,
		Short: p.Short,
		Long:  p.Long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := programs.Params{}
			for name, v := range params {
				ps[name] = *v
			}
			return runProgram(context.Background(), p, ps)
		},
	}
	addParamFlags(cmd.Flags(), p, params)
	return cmd
}

func addParamFlags(flags *pflag.FlagSet, p *programs.Program, params map[string]*int) {
	for _, pa := range p.Params {
		usage := pa.Usage
		if len(pa.Values) > 0 {
			usage += fmt.Sprintf(" %v", pa.Values)
		}
		params[pa.Name] = flags.Int(pa.Name, pa.Default, usage)
	}
}

// programEnv builds the runner environment from the command line flags.
func programEnv(params programs.Params) (programs.Env, error) {
	env := programs.Env{
		Options: simulator.Options{
			Shots:   rootFlags.shots,
			Seed:    rootFlags.seed,
			Workers: rootFlags.workers,
		},
		Params:    params,
		Plot:      !rootFlags.noPlot,
		Width:     report.TerminalWidth(),
		Verify:    rootFlags.verify,
		Tolerance: rootFlags.tolerance,
	}
	if rootFlags.backend != "" {
		id := simulator.ParseID(rootFlags.backend)
		if id == simulator.UnknownID {
			return env, verror(internalError, fmt.Errorf("error: unknown backend '%s'", rootFlags.backend))
		}
		env.Override = id
	}
	return env, nil
}

func runProgram(ctx context.Context, p *programs.Program, params programs.Params) (err error) {
	var (
		ts  = time.Now()
		rep *programs.Report
	)
	defer func() {
		csvReport{
			program:  p.Name,
			report:   rep,
			seed:     rootFlags.seed,
			duration: time.Since(ts),
			err:      err,
		}.save(rootFlags.csvFile)
	}()

	env, err := programEnv(params)
	if err != nil {
		return err
	}

	if rootFlags.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rootFlags.timeout)
		defer cancel()
	}

	rep, err = programs.Run(ctx, p, env)
	if rep != nil {
		logger.Debug(rep.Timer)
		if fn := rootFlags.outputFn; fn != "" && rep.Circuit != nil {
			if lerr := tools.Dump(circuit.QASMStringer{Circuit: rep.Circuit}, fn); lerr != nil {
				logger.Warnf("could not write %s: %v", fn, lerr)
			}
		}
	}
	if err != nil {
		logger.Debugf("error in %s: %v", p.Name, err)
		return classify(err)
	}
	logger.Infof("Elapsed time: %v", time.Since(ts))
	return nil
}
