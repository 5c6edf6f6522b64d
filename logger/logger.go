// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a simple logger with a few error levels.
//
// Unleveled output (Print, Println, Printf) is always written unless the
// logger has been silenced with SetFileDescriptor(nil). Leveled output is
// prefixed with a colored tag.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	fatal Level = iota
	// ERROR only log errors
	ERROR
	// WARN only log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

var (
	logger *bufio.Writer
	level  = ERROR
)

var tags = map[Level]struct {
	name  string
	color *color.Color
}{
	ERROR: {"[error]", color.New(color.FgRed, color.Bold)},
	WARN:  {"[warn]", color.New(color.FgYellow)},
	INFO:  {"[info]", color.New(color.FgCyan)},
	DEBUG: {"[debug]", color.New(color.FgBlue)},
}

// tag is evaluated on every call so that color.NoColor set after start-up
// is honored.
func tag(l Level) string {
	t := tags[l]
	return t.color.Sprint(t.name)
}

func init() {
	logger = bufio.NewWriter(os.Stdout)
}

// SetFileDescriptor sets the file descriptor to which the output is sent.
// If fd is nil, no output is shown.
func SetFileDescriptor(fd *os.File) {
	if fd == nil {
		logger = nil
		return
	}
	logger = bufio.NewWriter(fd)
}

// SetWriter redirects the output to w. Mostly useful in tests.
func SetWriter(w io.Writer) {
	if w == nil {
		logger = nil
		return
	}
	logger = bufio.NewWriter(w)
}

// Writer returns the current output as an io.Writer. Writes through it are
// flushed immediately. A silenced logger discards them.
func Writer() io.Writer {
	return flushWriter{}
}

// SetLevel reconfigures the error level of the logger.
func SetLevel(l Level) {
	level = l
}

// GetLevel returns the current level.
func GetLevel() Level {
	return level
}

// ParseLevel converts a level name into a Level. Unknown names map to ERROR.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	default:
		return ERROR
	}
}

// Fatal prints args and aborts the program.
func Fatal(args ...any) {
	Println(args...)
	fail()
}

// Fatalf prints the formatted message and aborts the program.
func Fatalf(format string, args ...any) {
	Printf(format, args...)
	Println()
	fail()
}

// Error works as fmt.Print, but it adds a newline at the end.
func Error(args ...any) {
	leveled(ERROR, args...)
}

// Errorf works as fmt.Printf, but it adds a newline at the end of the format string.
func Errorf(format string, args ...any) {
	leveledf(ERROR, format, args...)
}

// Warn works as fmt.Print when error level is WARN. It adds a newline at the end.
func Warn(args ...any) {
	leveled(WARN, args...)
}

// Warnf works as fmt.Printf when error level is WARN. It adds a newline at the end of the format string.
func Warnf(format string, args ...any) {
	leveledf(WARN, format, args...)
}

// Info works as fmt.Print when error level is INFO. It adds a newline at the end.
func Info(args ...any) {
	leveled(INFO, args...)
}

// Infof works as fmt.Printf when error level is INFO. It adds a newline at the end of the format string.
func Infof(format string, args ...any) {
	leveledf(INFO, format, args...)
}

// Debug works as fmt.Print when error level is DEBUG. It adds a newline at the end.
func Debug(args ...any) {
	leveled(DEBUG, args...)
}

// Debugf works as fmt.Printf when error level is DEBUG. It adds a newline at the end of the format string.
func Debugf(format string, args ...any) {
	leveledf(DEBUG, format, args...)
}

// Print works as fmt.Print, but flushes the file descriptor.
func Print(args ...any) {
	fprint(args...)
}

// Println works as fmt.Println, but flushes the file descriptor.
func Println(args ...any) {
	fprintln(args...)
}

// Printf works as fmt.Printf, but flushes the file descriptor.
func Printf(format string, args ...any) {
	fprint(fmt.Sprintf(format, args...))
}

func leveled(l Level, args ...any) {
	if logger == nil || level < l {
		return
	}
	fprintln(append([]any{tag(l)}, args...)...)
}

func leveledf(l Level, format string, args ...any) {
	if logger == nil || level < l {
		return
	}
	fprintln(tag(l), fmt.Sprintf(format, args...))
}

func fprint(args ...any) {
	if logger == nil {
		return
	}
	if _, err := fmt.Fprint(logger, args...); err != nil {
		fail()
	}
	flush()
}

func fprintln(args ...any) {
	if logger == nil {
		return
	}
	if _, err := fmt.Fprintln(logger, args...); err != nil {
		fail()
	}
	flush()
}

func flush() {
	if logger.Flush() != nil {
		fail()
	}
}

type flushWriter struct{}

func (flushWriter) Write(p []byte) (int, error) {
	if logger == nil {
		return len(p), nil
	}
	n, err := logger.Write(p)
	if err != nil {
		return n, err
	}
	return n, logger.Flush()
}

func fail() {
	// use fatal instead of panic to make linter happy
	log.Fatal()
}
