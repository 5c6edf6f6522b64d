// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package simulator

import (
	"context"

	"qcirc/circuit"
	"qcirc/core"
)

// Mock is a simple mock backend for testing.
type Mock struct {
	Err    error
	Result Result
	// Runs records the circuits passed to Run.
	Runs []*circuit.Circuit
}

var mock Mock

// GetMock return a Mock singleton.
func GetMock() *Mock {
	return &mock
}

// Reset clears the configured result, error and recorded runs.
func (m *Mock) Reset() {
	*m = Mock{}
}

// Name returns the mock backend name.
func (m *Mock) Name() string {
	return "mock"
}

// Run returns a copy of the desired result and error.
func (m *Mock) Run(_ context.Context, c *circuit.Circuit, _ Options) (*Result, error) {
	m.Runs = append(m.Runs, c.Clone())
	if m.Err != nil {
		return nil, m.Err
	}
	res := m.Result
	res.Backend = m.Name()
	res.Counts = core.Counts{}
	res.Counts.Merge(m.Result.Counts)
	if res.Shots == 0 {
		res.Shots = res.Counts.Total()
	}
	return &res, nil
}
