// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qcirc/logger"
	"qcirc/programs"
)

func init() {
	var listCmd = cobra.Command{
		Use:   "list",
		Short: "Lists the available programs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			List()
		},
	}
	rootCmd.AddCommand(&listCmd)
}

// List prints every program with its parameters.
func List() {
	for _, p := range programs.List() {
		logger.Printf("%-14s %s\n", p.Name, p.Short)
		var ps []string
		for _, pa := range p.Params {
			ps = append(ps, fmt.Sprintf("--%s=%d", pa.Name, pa.Default))
		}
		if len(ps) > 0 {
			logger.Printf("%-14s params: %s\n", "", strings.Join(ps, " "))
		}
	}
}
