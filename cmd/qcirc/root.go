// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the qcirc command line program.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qcirc/logger"
	"qcirc/programs"
	"qcirc/tools"
)

var rootCmd = cobra.Command{
	Use:           "qcirc",
	Short:         "",
	Long:          "",
	SilenceUsage:  true,
	SilenceErrors: true,

	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("run 'qcirc -h' for help")
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch rootFlags.log {
		case "INFO":
			logger.SetLevel(logger.INFO)
		case "WARN":
			logger.SetLevel(logger.WARN)
		default:
			logger.SetLevel(logger.ERROR)
		}
		if rootFlags.debug {
			logger.SetLevel(logger.DEBUG)
		}
		if rootFlags.quiet {
			logger.SetFileDescriptor(nil)
		}
		if rootFlags.noColor {
			color.NoColor = true
		}
	},
}

func init() {
	tools.RegEnv("QCIRC_DEFAULT_BACKEND", "qasm", "Backend of circuits loaded with 'run' (qasm|basic|statevector)")
	tools.RegEnv("QCIRC_DEFAULT_SHOTS", "0", "Shots per sampling step, 0 uses the program default")
	tools.RegEnv("QCIRC_SEED", "-1", "Seed of the samplers, negative seeds from the clock")
	tools.RegEnv("QCIRC_WORKERS", "4", "Goroutines sampling shots")

	helpMessage :=
		`qcirc -- Small quantum circuits on a built-in simulator`

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", "ERROR", "log level (ERROR|INFO|WARN)")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not produce output")
	flags.StringVarP(&rootFlags.backend, "backend", "b", "", "override the sampling backend (qasm|basic|statevector|mock)")
	flags.IntVarP(&rootFlags.shots, "shots", "s", envInt("QCIRC_DEFAULT_SHOTS", 0), "shots per sampling step, 0 uses the program default")
	flags.Int64Var(&rootFlags.seed, "seed", int64(envInt("QCIRC_SEED", -1)), "sampler seed, negative seeds from the clock")
	flags.IntVar(&rootFlags.workers, "workers", envInt("QCIRC_WORKERS", 4), "goroutines sampling shots")
	flags.DurationVar(&rootFlags.timeout, "timeout", 0, "Run timeout, e.g., 1s for 1 second, 1m for 1 minute.\ntimeout 0 is equivalent to no timeout")
	flags.BoolVar(&rootFlags.noPlot, "no-plot", false, "do not print histograms and Bloch vectors")
	flags.BoolVar(&rootFlags.noColor, "no-color", false, "disable colors")
	flags.BoolVar(&rootFlags.verify, "verify", false, "compare the final counts with the expected distribution")
	flags.Float64Var(&rootFlags.tolerance, "tolerance", programs.DefaultTolerance, "maximum deviation per outcome accepted by --verify")
	flags.StringVarP(&rootFlags.outputFn, "output", "o", "", "output OpenQASM file of the final circuit")
	flags.StringVar(&rootFlags.csvFile, "csv-log", "", "CSV file to append the final result to")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func envInt(name string, fallback int) int {
	v, err := tools.GetEnvInt(name)
	if err != nil {
		logger.Warnf("%v, using %d", err, fallback)
		return fallback
	}
	return v
}

var rootFlags struct {
	log       string
	debug     bool
	quiet     bool
	backend   string
	shots     int
	seed      int64
	workers   int
	timeout   time.Duration
	noPlot    bool
	noColor   bool
	verify    bool
	tolerance float64
	outputFn  string
	csvFile   string
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var (
			code = getErrorCode(err)
			msg  = getErrorMessage(err)
		)
		if msg != "" {
			logger.Println(msg)
		}
		os.Exit(code)
	}
}
