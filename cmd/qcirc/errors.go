// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"qcirc/circuit"
	"qcirc/core"
	"qcirc/logger"
	"qcirc/programs"
)

type errorType int

//go:generate go run golang.org/x/tools/cmd/stringer -type=errorType
const (
	verifyFail    errorType = 2
	internalError errorType = 1
	backendError  errorType = 1
	circuitError  errorType = 1
	noError       errorType = 0
)

type vError struct {
	typ errorType
	err error
}

func vfail(err error) *vError {
	return &vError{
		typ: verifyFail,
		err: err,
	}
}

func (e *vError) Error() string {
	switch e.typ {
	case verifyFail:
		// the comparison has already been printed
		logger.Debugf("%v: %v", e.typ, e.err)
		return ""
	default:
		return e.err.Error()
	}
}

func (e *vError) Unwrap() error {
	return e.err
}

func (e *vError) Code() int {
	return int(e.typ)
}

func verror(typ errorType, err error) *vError {
	return &vError{
		typ: typ,
		err: err,
	}
}

// classify wraps an error returned by programs.Run into a vError.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, programs.ErrVerification):
		return vfail(err)
	case errors.Is(err, circuit.ErrInvalidOp),
		errors.Is(err, core.ErrWidthMismatch),
		errors.Is(err, core.ErrIndexOutOfRange),
		errors.Is(err, core.ErrMalformed):
		return verror(circuitError, err)
	default:
		return verror(backendError, err)
	}
}

func getErrorType(err error) string {
	if err == nil {
		return "none"
	}
	var e *vError
	if errors.As(err, &e) {
		return fmt.Sprintf("%v", e.typ)
	}
	return "internalError"
}

func getErrorCode(err error) int {
	if err == nil {
		return 0
	}
	var e *vError
	if errors.As(err, &e) {
		return e.Code()
	}
	return int(internalError)
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
