// This file is part of monty - https://github.com/ayoubhayoune/monty
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind classifies fatal errors. All kinds share the same exit status and
// differ only by their message.
type Kind int

// Error kinds.
const (
	ErrUsage Kind = iota + 1
	ErrFileOpen
	ErrUnknownInstruction
	ErrAlloc
	ErrPushArg
	ErrPintEmpty
	ErrPopEmpty
	ErrStackTooShort
	ErrDivZero
	ErrPcharRange
	ErrPcharEmpty
)

var kindNames = [...]string{
	ErrUsage:              "usage",
	ErrFileOpen:           "file open",
	ErrUnknownInstruction: "unknown instruction",
	ErrAlloc:              "allocation",
	ErrPushArg:            "push argument",
	ErrPintEmpty:          "pint on empty stack",
	ErrPopEmpty:           "pop on empty stack",
	ErrStackTooShort:      "stack too short",
	ErrDivZero:            "division by zero",
	ErrPcharRange:         "pchar out of range",
	ErrPcharEmpty:         "pchar on empty stack",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a fatal interpreter error. Its message is the exact diagnostic line
// to report, without the trailing newline.
type Error struct {
	Kind Kind
	Line int    // source line, 1-based. 0 when not tied to a line.
	Op   string // offending opcode or operation name
	File string // file name, for ErrFileOpen
	Err  error  // underlying error, if any
}

func (e *Error) Error() string {
	l := "L" + strconv.Itoa(e.Line) + ": "
	switch e.Kind {
	case ErrUsage:
		return "USAGE: monty file"
	case ErrFileOpen:
		return "Error: Can't open file " + e.File
	case ErrUnknownInstruction:
		return l + "unknown instruction " + e.Op
	case ErrAlloc:
		return "Error: malloc failed"
	case ErrPushArg:
		return l + "usage: push integer"
	case ErrPintEmpty:
		return l + "can't pint, stack empty"
	case ErrPopEmpty:
		return l + "can't pop an empty stack"
	case ErrStackTooShort:
		return l + "can't " + e.Op + ", stack too short"
	case ErrDivZero:
		return l + "division by zero"
	case ErrPcharRange:
		return l + "can't pchar, value out of range"
	case ErrPcharEmpty:
		return l + "can't pchar, stack empty"
	}
	return l + e.Kind.String()
}

// Cause returns the underlying error, if any. This makes Error compatible with
// errors.Cause.
func (e *Error) Cause() error { return e.Err }

// Unwrap is the standard library counterpart of Cause.
func (e *Error) Unwrap() error { return e.Err }

// errAlloc is returned by List allocations. The dispatcher fills in the line.
var errAlloc = &Error{Kind: ErrAlloc}

func newError(k Kind, line int, op string) *Error {
	return &Error{Kind: k, Line: line, Op: op}
}

// UsageError returns the error reported when the program is not given exactly
// one file argument.
func UsageError() *Error { return &Error{Kind: ErrUsage} }

// FileOpenError returns the error reported when the program file cannot be
// read. The cause is kept for diagnostics.
func FileOpenError(name string, cause error) *Error {
	return &Error{Kind: ErrFileOpen, File: name, Err: cause}
}

// KindOf returns the Kind of err if it is or wraps an *Error, and 0 otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCode maps an error returned by Run or Execute to a process exit status:
// 0 for nil, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
