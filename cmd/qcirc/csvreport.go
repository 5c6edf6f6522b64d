// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"qcirc/logger"
	"qcirc/programs"
	"qcirc/tools"
)

type csvReport struct {
	program  string
	report   *programs.Report
	seed     int64
	duration time.Duration
	err      error
}

const (
	dateTime  = "2006-01-02 15:04:05"
	csvHeader = "# date, program, backend, shots, seed, duration, outcome, distance, error_type, exit_code"
)

func (csv csvReport) save(filename string) {
	if filename == "" {
		return
	}
	var (
		backend  string
		shots    int
		outcome  string
		distance = "-"
	)
	if r := csv.report; r != nil {
		backend = r.Backend()
		shots = r.Shots()
		outcome, _ = r.Counts.MostFrequent()
		if r.Comparison != nil {
			distance = fmt.Sprintf("%.4f", r.Comparison.Distance)
		}
	}
	line := fmt.Sprintf("%s, %s, %s, %d, %d, %v, %s, %s, %s, %d",
		time.Now().Format(dateTime),
		csv.program,
		backend,
		shots,
		csv.seed,
		csv.duration,
		outcome,
		distance,
		getErrorType(csv.err),
		getErrorCode(csv.err))
	if err := tools.AppendLine(filename, csvHeader, line); err != nil {
		logger.Fatalf("could not append to %v: %v", filename, err)
	}
}
