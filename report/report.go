// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders simulation results for the terminal: counts,
// histograms, state vectors, Bloch vectors and decoded bits.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"qcirc/core"
	"qcirc/simulator"
)

var (
	barColor   = color.New(color.FgCyan).SprintFunc()
	labelColor = color.New(color.FgYellow).SprintFunc()
	headColor  = color.New(color.Bold).SprintFunc()
)

// DefaultWidth is the total histogram width when the output is not a terminal.
const DefaultWidth = 60

// TerminalWidth returns the width of stdout if it is a terminal and
// DefaultWidth otherwise.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Section prints a heading in the style of the rest of the report.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "== %s %s\n", headColor(strings.ToUpper(title)), strings.Repeat("=", max(0, 44-len(title))))
}

// Counts prints the counts dictionary.
func Counts(w io.Writer, c core.Counts) {
	fmt.Fprintln(w, c.String())
}

// Histogram prints one bar per outcome, scaled so that the largest bar
// fits into width columns together with the labels.
func Histogram(w io.Writer, c core.Counts, width int) {
	keys := c.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(w, "(no counts)")
		return
	}
	var (
		total  = c.Total()
		most   int
		labelW int
	)
	for _, k := range keys {
		most = max(most, c[k])
		labelW = max(labelW, len(k))
	}
	// label, space, bar, space, "100.0% (n)"
	tail := len(fmt.Sprintf(" %5.1f%% (%d)", 100.0, total))
	barW := max(1, width-labelW-1-tail)
	for _, k := range keys {
		n := 0
		if most > 0 {
			n = int(math.Round(float64(c[k]) / float64(most) * float64(barW)))
		}
		pct := 100 * float64(c[k]) / float64(total)
		fmt.Fprintf(w, "%s %s%s %5.1f%% (%d)\n",
			labelColor(fmt.Sprintf("%*s", labelW, k)),
			barColor(strings.Repeat("█", n)),
			strings.Repeat(" ", barW-n),
			pct, c[k])
	}
}

// Statevector prints the amplitudes and probabilities of every basis state
// with non-zero amplitude.
func Statevector(w io.Writer, sv *simulator.Statevector) {
	fmt.Fprintln(w, sv.String())
	probs := sv.Probabilities()
	for i, a := range sv.Amplitudes() {
		if probs[i] < 1e-12 {
			continue
		}
		fmt.Fprintf(w, "  |%s⟩ %+.4f%+.4fi  p=%.4f\n", sv.Label(i), clean(real(a)), clean(imag(a)), probs[i])
	}
}

// Bloch prints the Bloch vector of every qubit with its length and polar
// angles. A length below 1 means the qubit is entangled.
func Bloch(w io.Writer, sv *simulator.Statevector) {
	for q := 0; q < sv.Qubits(); q++ {
		x, y, z := sv.Bloch(q)
		x, y, z = clean(x), clean(y), clean(z)
		r := math.Sqrt(x*x + y*y + z*z)
		fmt.Fprintf(w, "qubit %d: (x=%+.4f, y=%+.4f, z=%+.4f) |r|=%.4f", q, x, y, z, r)
		if r > 1e-9 {
			theta := math.Acos(math.Max(-1, math.Min(1, z/r)))
			phi := math.Atan2(y, x)
			fmt.Fprintf(w, " θ=%.4f φ=%.4f", theta, clean(phi))
		}
		fmt.Fprintln(w)
	}
}

// Decoded prints one "NAME is v" line per named bit in assignment order.
func Decoded(w io.Writer, a core.Assignment, values map[string]string) {
	for _, nb := range a {
		fmt.Fprintf(w, "%s is %s\n", nb.Name, values[nb.Name])
	}
}

func clean(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}
