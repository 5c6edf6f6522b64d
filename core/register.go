// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Register is the value of a classical register: a fixed-width sequence of
// bits as produced by one measurement shot. Bit 0 is the least significant
// bit and is printed as the rightmost character.
type Register struct {
	data []uint64
	bits int
}

const u64 = 64

var (
	// ErrMalformed is returned when a bitstring contains characters other than '0' and '1'.
	ErrMalformed = errors.New("malformed bitstring")
	// ErrWidthMismatch is returned when a bitstring does not have the declared width.
	ErrWidthMismatch = errors.New("bitstring width mismatch")
	// ErrIndexOutOfRange is returned when a classical bit index is outside the register.
	ErrIndexOutOfRange = errors.New("classical bit index out of range")
)

func divceil(a, b int) int {
	return (a + b - 1) / b
}

// NewRegister returns a register of the given width with all bits cleared.
func NewRegister(width int) Register {
	return Register{
		bits: width,
		data: make([]uint64, divceil(width, u64)),
	}
}

// ParseRegister parses a string of '0's and '1's, most significant bit
// first. The string length must equal width.
func ParseRegister(str string, width int) (Register, error) {
	if len(str) != width {
		return Register{}, fmt.Errorf("%w: %q has %d bits, want %d", ErrWidthMismatch, str, len(str), width)
	}
	r := NewRegister(width)
	for i := 0; i < len(str); i++ {
		switch str[len(str)-i-1] {
		case '1':
			r.data[i/u64] |= 1 << (i % u64)
		case '0':
		default:
			return Register{}, fmt.Errorf("%w: %q", ErrMalformed, str)
		}
	}
	return r, nil
}

// RegisterFromIndex creates a register whose bits are the low width bits of idx.
func RegisterFromIndex(idx uint64, width int) Register {
	r := NewRegister(width)
	for i := 0; i < width && i < u64; i++ {
		if idx&(1<<i) != 0 {
			r.data[0] |= 1 << i
		}
	}
	return r
}

// Width returns the number of bits of the register.
func (r Register) Width() int {
	return r.bits
}

// Bit returns the i-th classical bit as a '0' or '1' character.
func (r Register) Bit(i int) (byte, error) {
	if i < 0 || i >= r.bits {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, r.bits)
	}
	if r.data[i/u64]&(1<<(i%u64)) != 0 {
		return '1', nil
	}
	return '0', nil
}

// Set returns a copy of r with the given bits set to v.
func (r Register) Set(v bool, idx ...int) (Register, error) {
	r = r.Clone()
	for _, i := range idx {
		if i < 0 || i >= r.bits {
			return r, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, r.bits)
		}
		if v {
			r.data[i/u64] |= 1 << (i % u64)
		} else {
			r.data[i/u64] &^= 1 << (i % u64)
		}
	}
	return r, nil
}

// Clone copies the register cloning the internal slice.
func (r Register) Clone() Register {
	c := NewRegister(r.bits)
	copy(c.data, r.data)
	return c
}

// Equals returns true if r and o have the same width and bits.
func (r Register) Equals(o Register) bool {
	if r.bits != o.bits || len(r.data) != len(o.data) {
		return false
	}
	for i := range r.data {
		if r.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Ones returns the number of one-bits in the register.
func (r Register) Ones() int {
	var n int
	for _, d := range r.data {
		for ; d != 0; d &= d - 1 {
			n++
		}
	}
	return n
}

// String returns the bitstring, most significant bit first.
func (r Register) String() string {
	var sb strings.Builder
	sb.Grow(r.bits)
	for i := r.bits - 1; i >= 0; i-- {
		if r.data[i/u64]&(1<<(i%u64)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
