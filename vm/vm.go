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
	"io"
	"strconv"

	"github.com/ayoubhayoune/monty/internal/ngi"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Cell is the raw type stored in a stack node.
type Cell int32

// Mode selects where push inserts new values.
type Mode int

// Container modes.
const (
	StackMode Mode = iota // LIFO: push at the head
	QueueMode             // FIFO: push at the tail
)

func (m Mode) String() string {
	if m == QueueMode {
		return "queue"
	}
	return "stack"
}

// ParseMode converts "stack" or "queue" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "stack", "":
		return StackMode, nil
	case "queue":
		return QueueMode, nil
	}
	return StackMode, errors.Errorf("unknown mode %q", s)
}

// State is the dispatcher state.
type State int

// Dispatcher states.
const (
	Running State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "halted"
	}
	return "running"
}

// Instruction is a single decoded source line.
type Instruction struct {
	Line int    // 1-based line number
	Op   string // opcode name
	Arg  string // remainder of the line, may be empty
}

// InstructionReader is the interface that wraps the Next method.
//
// Next returns the next instruction to execute, or io.EOF when the program is
// exhausted.
type InstructionReader interface {
	Next() (Instruction, error)
}

// Instance represents a Monty interpreter instance.
type Instance struct {
	stack    *List
	mode     Mode
	output   *ngi.ErrWriter
	log      zerolog.Logger
	insCount int64
	line     int
	state    State
	exitCode int
}

// Option interface
type Option func(*Instance) error

// Output sets the io.Writer used by printing opcodes. The default is
// io.Discard.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		if w == nil {
			return errors.New("nil output writer")
		}
		i.output = ngi.NewErrWriter(w)
		return nil
	}
}

// Logger sets the logger used to trace execution. The default logger discards
// everything.
func Logger(l zerolog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// MaxDepth limits the number of values the stack can hold. Pushing more values
// fails with an ErrAlloc error. A size of 0 means no limit, which is the
// default.
func MaxDepth(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid stack size %d", size)
		}
		if size > 0 && size < i.stack.Len() {
			return errors.Errorf("stack size %d smaller than current depth %d", size, i.stack.Len())
		}
		i.stack.limit = size
		return nil
	}
}

// StartMode sets the initial container mode. The default is StackMode.
func StartMode(m Mode) Option {
	return func(i *Instance) error {
		i.mode = m
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new interpreter instance with an empty stack.
//
// Options will be set by calling SetOptions.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{
		stack:  NewList(0),
		output: ngi.NewErrWriter(io.Discard),
		log:    zerolog.Nop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Execute runs a single instruction. The line number is used in error
// messages.
//
// Empty opcodes and opcodes starting with '#' are comments and do nothing.
func (i *Instance) Execute(op, arg string, line int) error {
	i.line = line
	if isComment(op) {
		return nil
	}
	fn, ok := opcodeIndex[op]
	if !ok {
		err := newError(ErrUnknownInstruction, line, op)
		i.log.Debug().Err(err).Int("line", line).Str("op", op).Msg("unknown instruction")
		return err
	}
	i.log.Trace().
		Int("line", line).
		Str("op", op).
		Str("arg", arg).
		Int("depth", i.stack.Len()).
		Str("mode", i.mode.String()).
		Msg("exec")
	err := fn(i, arg, line)
	i.insCount++
	if err != nil {
		if err == errAlloc {
			err = newError(ErrAlloc, line, op)
		}
		i.log.Debug().Err(err).Int("line", line).Str("op", op).Msg("instruction failed")
	}
	return err
}

// Shutdown releases all values held by the instance and flushes its output.
// It can safely be called multiple times.
func (i *Instance) Shutdown() error {
	i.stack.Clear()
	return i.output.Flush()
}

// State returns the dispatcher state.
func (i *Instance) State() State { return i.state }

// ExitCode returns the exit code of a halted instance.
func (i *Instance) ExitCode() int { return i.exitCode }

func (i *Instance) halt(err error) error {
	i.state = Halted
	i.exitCode = ExitCode(err)
	return err
}

// Data returns a copy of the stack values, top first.
func (i *Instance) Data() []Cell {
	return i.stack.Values()
}

// Depth returns the number of values on the stack.
func (i *Instance) Depth() int {
	return i.stack.Len()
}

// Mode returns the current container mode.
func (i *Instance) Mode() Mode {
	return i.mode
}

// Line returns the line number of the last executed instruction.
func (i *Instance) Line() int {
	return i.line
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the stack values, top first, separated by spaces and followed by
// a newline, to the specified io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	sep := false
	for v := range i.stack.All() {
		if sep {
			ew.WriteByte(' ')
		}
		io.WriteString(ew, strconv.Itoa(int(v)))
		sep = true
	}
	ew.WriteByte('\n')
	return ew.Err
}
