// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package core contains the most basic objects of qcirc: classical register
// values, measurement counts, gate kinds and the decoding of measured
// bitstrings into named logical outputs.
package core

import (
	"fmt"
)

// NamedBit binds a logical name to a classical register index.
type NamedBit struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"clbit"`
}

// Assignment is the ordered set of named bits of a circuit.
type Assignment []NamedBit

// Validate checks that names are unique and non-empty and that every index
// fits a register of the given width.
func (a Assignment) Validate(width int) error {
	seen := make(map[string]bool, len(a))
	for _, nb := range a {
		if nb.Name == "" {
			return fmt.Errorf("empty name for classical bit %d", nb.Index)
		}
		if seen[nb.Name] {
			return fmt.Errorf("duplicate name %q", nb.Name)
		}
		seen[nb.Name] = true
		if nb.Index < 0 || nb.Index >= width {
			return fmt.Errorf("%w: %s at %d not in [0, %d)", ErrIndexOutOfRange, nb.Name, nb.Index, width)
		}
	}
	return nil
}

// Decode maps a measured bitstring to the value of every named bit.
// The bitstring is most significant bit first, so classical bit i is the
// character at position width-1-i.
func Decode(bitstring string, width int, a Assignment) (map[string]string, error) {
	r, err := ParseRegister(bitstring, width)
	if err != nil {
		return nil, err
	}
	if err := a.Validate(width); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(a))
	for _, nb := range a {
		b, err := r.Bit(nb.Index)
		if err != nil {
			return nil, err
		}
		out[nb.Name] = string(b)
	}
	return out, nil
}
