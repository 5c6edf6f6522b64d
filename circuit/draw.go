// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"qcirc/core"
)

const (
	quantumFill   = "─"
	classicalFill = "═"
)

type layer struct {
	cells map[int]string // wire -> label; wire NumQubits is the classical row
}

// String draws the circuit as text, one row per qubit plus one classical
// row, with operations laid out left to right.
func (c *Circuit) String() string {
	var (
		rows   = c.NumQubits
		levels = make([]int, rows+1)
		layers []layer
	)
	if c.NumClbits > 0 {
		rows++
	}

	for _, op := range c.Ops {
		cells, lo, hi := c.cells(op)
		at := 0
		for w := lo; w <= hi; w++ {
			if levels[w] > at {
				at = levels[w]
			}
		}
		for w := lo; w <= hi; w++ {
			levels[w] = at + 1
		}
		for len(layers) <= at {
			layers = append(layers, layer{cells: map[int]string{}})
		}
		for w, l := range cells {
			layers[at].cells[w] = l
		}
	}

	var (
		lines   = make([]strings.Builder, rows)
		prefix  = make([]string, rows)
		prefixW int
	)
	for w := 0; w < rows; w++ {
		if w < c.NumQubits {
			prefix[w] = fmt.Sprintf("q%d: ", w)
		} else {
			prefix[w] = fmt.Sprintf("c: %d/", c.NumClbits)
		}
		if n := utf8.RuneCountInString(prefix[w]); n > prefixW {
			prefixW = n
		}
	}
	for w := 0; w < rows; w++ {
		lines[w].WriteString(strings.Repeat(" ", prefixW-utf8.RuneCountInString(prefix[w])))
		lines[w].WriteString(prefix[w])
	}

	for _, l := range layers {
		width := 1
		for _, label := range l.cells {
			if n := utf8.RuneCountInString(label); n > width {
				width = n
			}
		}
		for w := 0; w < rows; w++ {
			fill := quantumFill
			if w >= c.NumQubits {
				fill = classicalFill
			}
			label, ok := l.cells[w]
			if !ok {
				label = fill
			}
			lines[w].WriteString(fill)
			lines[w].WriteString(label)
			lines[w].WriteString(strings.Repeat(fill, width-utf8.RuneCountInString(label)))
			lines[w].WriteString(fill)
		}
	}

	out := make([]string, rows)
	for w := range lines {
		fill := quantumFill
		if w >= c.NumQubits {
			fill = classicalFill
		}
		out[w] = lines[w].String() + fill
	}
	return strings.Join(out, "\n")
}

// cells returns the labels an operation puts on each wire and the range of
// wires it blocks.
func (c *Circuit) cells(op Op) (map[int]string, int, int) {
	cells := map[int]string{}
	lo, hi := op.Qubits[0], op.Qubits[0]
	for _, q := range op.Qubits {
		if q < lo {
			lo = q
		}
		if q > hi {
			hi = q
		}
	}

	switch op.Gate {
	case core.Barrier:
		for _, q := range op.Qubits {
			cells[q] = "░"
		}
		return cells, lo, hi
	case core.Measure:
		cells[op.Qubits[0]] = "M"
		for w := op.Qubits[0] + 1; w < c.NumQubits; w++ {
			cells[w] = "╫"
		}
		cells[c.NumQubits] = "╩" + strconv.Itoa(op.Clbits[0])
		return cells, lo, c.NumQubits
	}

	for w := lo + 1; w < hi; w++ {
		cells[w] = "┼"
	}
	nc := op.Gate.Controls()
	for _, q := range op.Qubits[:nc] {
		cells[q] = "■"
	}
	target := op.Qubits[len(op.Qubits)-1]
	switch op.Gate {
	case core.CX, core.CCX:
		cells[target] = "⊕"
	case core.CZ:
		cells[target] = "■"
	case core.CY:
		cells[target] = "Y"
	case core.SWAP:
		cells[op.Qubits[0]] = "x"
		cells[op.Qubits[1]] = "x"
	default:
		cells[target] = label(op)
	}
	return cells, lo, hi
}

func label(op Op) string {
	name := strings.ToUpper(op.Gate.String())
	if len(op.Params) == 0 {
		return name
	}
	if len(name) > 1 {
		name = name[:1] + strings.ToLower(name[1:])
	}
	ps := make([]string, len(op.Params))
	for i, p := range op.Params {
		ps[i] = FormatAngle(p)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(ps, ","))
}

// FormatAngle prints angles that are simple fractions of pi as such,
// e.g. "π/3" or "-3π/4", and anything else with three significant digits.
func FormatAngle(theta float64) string {
	const eps = 1e-9
	if math.Abs(theta) < eps {
		return "0"
	}
	for den := 1; den <= 8; den++ {
		num := theta * float64(den) / math.Pi
		rnum := math.Round(num)
		if rnum == 0 || math.Abs(num-rnum) > eps {
			continue
		}
		var s string
		switch n := int(rnum); n {
		case 1:
			s = "π"
		case -1:
			s = "-π"
		default:
			s = strconv.Itoa(n) + "π"
		}
		if den > 1 {
			s += "/" + strconv.Itoa(den)
		}
		return s
	}
	return strconv.FormatFloat(theta, 'g', 3, 64)
}
