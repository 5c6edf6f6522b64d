// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tools contains the environment variable registry and small
// helpers to dump, append and remove files.
package tools

import (
	"errors"
	"fmt"
	"os"

	"qcirc/logger"
)

const fileMode = 0600

// MockFileExistsErr is a mock error returned by FileExists in tests
var MockFileExistsErr error

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	if MockFileExistsErr != nil {
		return MockFileExistsErr
	}
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", fn)
	}
	return nil
}

// Remove deletes a file.
func Remove(fn string) error {
	logger.Debugf("Remove file '%s'", fn)
	return os.Remove(fn)
}

// Dump writes the string form of m to a file, truncating it.
func Dump(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = fmt.Fprint(out, m)
	return err
}

// AppendLine appends line to fn. If the file does not exist yet it is
// created and header is written first.
func AppendLine(fn, header, line string) error {
	withHeader := false
	if _, err := os.Stat(fn); errors.Is(err, os.ErrNotExist) {
		withHeader = header != ""
	}

	fp, err := os.OpenFile(fn,
		os.O_APPEND|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return fmt.Errorf("could not open file %v: %w", fn, err)
	}
	defer func() {
		if err := fp.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()

	if withHeader {
		if _, err := fmt.Fprintln(fp, header); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(fp, line)
	return err
}
