// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strconv"
	"strings"

	"qcirc/core"
)

// QASM returns the circuit as an OpenQASM 2.0 program.
func (c *Circuit) QASM() string {
	var b strings.Builder

	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n")
	if c.Name != "" {
		fmt.Fprintf(&b, "// %s\n", c.Name)
	}
	fmt.Fprintf(&b, "qreg q[%d];\n", c.NumQubits)
	if c.NumClbits > 0 {
		fmt.Fprintf(&b, "creg c[%d];\n", c.NumClbits)
	}

	for _, op := range c.Ops {
		qs := make([]string, len(op.Qubits))
		for i, q := range op.Qubits {
			qs[i] = fmt.Sprintf("q[%d]", q)
		}
		if op.Gate == core.Measure {
			fmt.Fprintf(&b, "measure %s -> c[%d];\n", qs[0], op.Clbits[0])
			continue
		}
		b.WriteString(op.Gate.String())
		if len(op.Params) > 0 {
			ps := make([]string, len(op.Params))
			for i, p := range op.Params {
				ps[i] = qasmAngle(p)
			}
			fmt.Fprintf(&b, "(%s)", strings.Join(ps, ","))
		}
		fmt.Fprintf(&b, " %s;\n", strings.Join(qs, ","))
	}
	return b.String()
}

func qasmAngle(theta float64) string {
	s := FormatAngle(theta)
	if !strings.Contains(s, "π") {
		return strconv.FormatFloat(theta, 'g', -1, 64)
	}
	s = strings.Replace(s, "π", "*pi", 1)
	s = strings.TrimPrefix(s, "*")
	return strings.Replace(s, "-*", "-", 1)
}

// QASMStringer adapts a circuit so that String returns OpenQASM instead of
// the drawing.
type QASMStringer struct {
	*Circuit
}

func (q QASMStringer) String() string {
	return q.QASM()
}
