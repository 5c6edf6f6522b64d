// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"qcirc/core"
	"qcirc/logger"
)

// Angle is a gate parameter. In YAML it is either a number or an
// expression such as "pi/3", "2*pi/3" or "-pi".
type Angle float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Angle) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: angle must be a scalar", value.Line)
	}
	v, err := ParseAngle(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = Angle(v)
	return nil
}

// ParseAngle parses a number or a multiple of pi: [-][k*]pi[/d].
func ParseAngle(s string) (float64, error) {
	expr := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	expr = strings.ReplaceAll(expr, "π", "pi")
	if v, err := strconv.ParseFloat(expr, 64); err == nil {
		return v, nil
	}

	sign := 1.0
	if strings.HasPrefix(expr, "-") {
		sign = -1
		expr = expr[1:]
	}
	i := strings.Index(expr, "pi")
	if i < 0 {
		return 0, fmt.Errorf("cannot parse angle %q", s)
	}
	num, den := 1.0, 1.0
	if pre := expr[:i]; pre != "" {
		v, err := strconv.ParseFloat(strings.TrimSuffix(pre, "*"), 64)
		if err != nil || !strings.HasSuffix(pre, "*") {
			return 0, fmt.Errorf("cannot parse angle %q", s)
		}
		num = v
	}
	if post := expr[i+2:]; post != "" {
		v, err := strconv.ParseFloat(strings.TrimPrefix(post, "/"), 64)
		if err != nil || !strings.HasPrefix(post, "/") || v == 0 {
			return 0, fmt.Errorf("cannot parse angle %q", s)
		}
		den = v
	}
	return sign * num * math.Pi / den, nil
}

type fileOp struct {
	Gate   string  `yaml:"gate"`
	Qubits []int   `yaml:"qubits"`
	Clbits []int   `yaml:"clbits"`
	Params []Angle `yaml:"params"`
}

type file struct {
	Name   string             `yaml:"name"`
	Qubits int                `yaml:"qubits"`
	Clbits int                `yaml:"clbits"`
	Shots  int                `yaml:"shots"`
	Ops    []fileOp           `yaml:"ops"`
	Names  core.Assignment    `yaml:"names"`
	Expect map[string]float64 `yaml:"expect"`
}

// Definition is a circuit read from a file together with the metadata
// needed to run and interpret it.
type Definition struct {
	Circuit *Circuit
	Shots   int
	Names   core.Assignment
	Expect  map[string]float64
}

const measureAll = "measure_all"

// LoadYAML reads a circuit definition.
func LoadYAML(r io.Reader) (*Definition, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("could not parse circuit: %w", err)
	}

	c := New(f.Qubits, f.Clbits).Named(f.Name)
	for i, fop := range f.Ops {
		if strings.EqualFold(fop.Gate, measureAll) {
			c.MeasureAll()
			continue
		}
		op := Op{
			Gate:   core.ParseGate(fop.Gate),
			Qubits: fop.Qubits,
			Clbits: fop.Clbits,
		}
		if op.Gate == core.Barrier && len(op.Qubits) == 0 {
			op.Qubits = c.allQubits()
		}
		for _, p := range fop.Params {
			op.Params = append(op.Params, float64(p))
		}
		if c.Err() != nil {
			break
		}
		if err := c.Append(op); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, fop.Gate, err)
		}
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	if err := f.Names.Validate(c.NumClbits); err != nil {
		return nil, fmt.Errorf("names: %w", err)
	}
	if f.Shots < 0 {
		return nil, fmt.Errorf("negative shots: %d", f.Shots)
	}
	logger.Debugf("loaded circuit %q: %d qubits, %d clbits, %d ops", c.Name, c.NumQubits, c.NumClbits, len(c.Ops))

	return &Definition{
		Circuit: c,
		Shots:   f.Shots,
		Names:   f.Names,
		Expect:  f.Expect,
	}, nil
}

// LoadFile reads a circuit definition from a YAML file.
func LoadFile(fn string) (*Definition, error) {
	fp, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := fp.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	def, err := LoadYAML(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	if def.Circuit.Name == "" {
		def.Circuit.Name = fn
	}
	return def, nil
}
