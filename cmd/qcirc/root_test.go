// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"qcirc/logger"
	"qcirc/programs"
)

func TestHelpListsEnvironment(t *testing.T) {
	for _, ev := range []string{"QCIRC_DEFAULT_BACKEND", "QCIRC_DEFAULT_SHOTS", "QCIRC_SEED", "QCIRC_WORKERS"} {
		assert.Contains(t, rootCmd.Long, ev)
	}
}

func TestSubcommands(t *testing.T) {
	want := []string{"list", "run", "version"}
	for _, p := range programs.List() {
		want = append(want, p.Name)
	}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		assert.Nil(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	cmd, _, err := rootCmd.Find([]string{"adder"})
	assert.Nil(t, err)
	assert.NotNil(t, cmd.Flags().Lookup("a"))
	assert.NotNil(t, cmd.Flags().Lookup("b"))
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	logger.SetWriter(&buf)
	defer logger.SetFileDescriptor(nil)

	List()
	out := buf.String()
	assert.Equal(t, 5, strings.Count(out, "\n"))
	assert.Contains(t, out, "params: --a=1 --b=1")
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, 0, getErrorCode(nil))
	assert.Equal(t, "none", getErrorType(nil))
	assert.Equal(t, 1, getErrorCode(errors.New("x")))
	assert.Equal(t, "internalError", getErrorType(errors.New("x")))
	assert.Equal(t, 2, getErrorCode(vfail(programs.ErrVerification)))
	assert.Equal(t, "verifyFail", getErrorType(vfail(programs.ErrVerification)))
	assert.Equal(t, "", vfail(programs.ErrVerification).Error())
	assert.Equal(t, "internalError", backendError.String())
}
