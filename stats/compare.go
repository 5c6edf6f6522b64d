// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stats compares measured counts with expected distributions and
// keeps timing statistics of backend runs.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"qcirc/core"
)

// Comparison summarizes how far measured counts are from an expected
// distribution.
type Comparison struct {
	// Distance is the total variation distance, in [0, 1].
	Distance float64
	// MaxDeviation is the largest absolute difference for a single outcome.
	MaxDeviation float64
	// Worst is the outcome with the largest deviation.
	Worst string
	// Unexpected lists observed outcomes whose expected probability is 0.
	Unexpected []string
	// Shots is the number of samples compared.
	Shots int
}

// Compare measures the distance between counts and expected. Outcomes
// missing from expected have probability 0.
func Compare(counts core.Counts, expected map[string]float64) Comparison {
	cmp := Comparison{Shots: counts.Total()}
	observed := counts.Probabilities()

	keys := map[string]bool{}
	for k := range observed {
		keys[k] = true
	}
	for k := range expected {
		keys[k] = true
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, k := range sorted {
		d := math.Abs(observed[k] - expected[k])
		cmp.Distance += d
		if d > cmp.MaxDeviation {
			cmp.MaxDeviation, cmp.Worst = d, k
		}
		if expected[k] == 0 && counts[k] > 0 {
			cmp.Unexpected = append(cmp.Unexpected, k)
		}
	}
	cmp.Distance /= 2
	return cmp
}

// Within reports whether no impossible outcome was seen and every outcome
// deviates by at most tol.
func (c Comparison) Within(tol float64) bool {
	return len(c.Unexpected) == 0 && c.MaxDeviation <= tol
}

func (c Comparison) String() string {
	s := fmt.Sprintf("distance %.4f, max deviation %.4f", c.Distance, c.MaxDeviation)
	if c.Worst != "" {
		s += fmt.Sprintf(" at %s", c.Worst)
	}
	if len(c.Unexpected) > 0 {
		s += fmt.Sprintf(", unexpected outcomes %s", strings.Join(c.Unexpected, " "))
	}
	return s
}

// Normalize checks that expected is a probability distribution: values are
// non-negative and sum to 1 within 1e-6.
func Normalize(expected map[string]float64) error {
	var total float64
	for k, v := range expected {
		if v < 0 {
			return fmt.Errorf("negative probability %v for %s", v, k)
		}
		total += v
	}
	if math.Abs(total-1) > 1e-6 {
		return fmt.Errorf("probabilities sum to %v, not 1", total)
	}
	return nil
}
