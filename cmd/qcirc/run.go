// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"qcirc/circuit"
	"qcirc/programs"
	"qcirc/simulator"
	"qcirc/tools"
)

var runCmd = cobra.Command{
	Use:   "run [flags] <circuit.yaml>",
	Short: "Runs a circuit defined in a YAML file",
	Args:  IsArgsn,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCircuitFile(context.Background(), args[0])
	},

	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.AddCommand(&runCmd)
}

func runCircuitFile(ctx context.Context, fn string) error {
	if err := tools.FileExists(fn); err != nil {
		return verror(internalError, err)
	}
	def, err := circuit.LoadFile(fn)
	if err != nil {
		return verror(circuitError, err)
	}
	p := programs.FromCircuitFile(def)

	id := simulator.ParseID(tools.GetEnv("QCIRC_DEFAULT_BACKEND"))
	if id == simulator.UnknownID {
		return verror(internalError, fmt.Errorf("error: invalid QCIRC_DEFAULT_BACKEND '%s'", tools.GetEnv("QCIRC_DEFAULT_BACKEND")))
	}
	for i := range p.Steps {
		if p.Steps[i].Kind == programs.Counts {
			p.Steps[i].Backend = id
		}
	}
	return runProgram(ctx, p, nil)
}
