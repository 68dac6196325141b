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
	"strings"
	"unsafe"
)

var cellBits = 8 * int(unsafe.Sizeof(Cell(0)))

// Push pushes v on the stack, at the head in stack mode or at the tail in
// queue mode.
func (i *Instance) Push(v Cell) error {
	if i.mode == QueueMode {
		return i.stack.PushBack(v)
	}
	return i.stack.PushFront(v)
}

// Pop removes the value on top of the stack and returns it. The stack must not
// be empty.
func (i *Instance) Pop() Cell {
	return i.stack.PopFront()
}

// parseArg returns the first field of a push argument as a Cell.
func parseArg(arg string) (Cell, bool) {
	f := strings.Fields(arg)
	if len(f) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(f[0], 10, cellBits)
	if err != nil {
		return 0, false
	}
	return Cell(n), true
}

func opPush(i *Instance, arg string, line int) error {
	v, ok := parseArg(arg)
	if !ok {
		return newError(ErrPushArg, line, "push")
	}
	return i.Push(v)
}

func opPall(i *Instance, _ string, _ int) error {
	for v := range i.stack.All() {
		if err := i.output.WriteInt(int64(v)); err != nil {
			return err
		}
	}
	return nil
}

func opPint(i *Instance, _ string, line int) error {
	if i.stack.Len() == 0 {
		return newError(ErrPintEmpty, line, "pint")
	}
	return i.output.WriteInt(int64(i.stack.Front()))
}

func opPop(i *Instance, _ string, line int) error {
	if i.stack.Len() == 0 {
		return newError(ErrPopEmpty, line, "pop")
	}
	i.stack.PopFront()
	return nil
}

func opSwap(i *Instance, _ string, line int) error {
	if i.stack.Len() < 2 {
		return newError(ErrStackTooShort, line, "swap")
	}
	i.stack.SwapFront()
	return nil
}

func opNop(*Instance, string, int) error { return nil }

func add(b, a Cell) Cell { return b + a }
func sub(b, a Cell) Cell { return b - a }
func mul(b, a Cell) Cell { return b * a }
func div(b, a Cell) Cell { return b / a }
func mod(b, a Cell) Cell { return b % a }

// binOp builds an opcode that replaces the two values on top of the stack with
// fn(second, top).
func binOp(name string, fn func(b, a Cell) Cell) opFunc {
	return func(i *Instance, _ string, line int) error {
		if i.stack.Len() < 2 {
			return newError(ErrStackTooShort, line, name)
		}
		a := i.stack.PopFront()
		b := i.stack.PopFront()
		// cannot fail: two slots were just released
		return i.stack.PushFront(fn(b, a))
	}
}

// divOp is like binOp but fails if the value on top of the stack is zero.
func divOp(name string, fn func(b, a Cell) Cell) opFunc {
	op := binOp(name, fn)
	return func(i *Instance, arg string, line int) error {
		if i.stack.Len() >= 2 && i.stack.Front() == 0 {
			return newError(ErrDivZero, line, name)
		}
		return op(i, arg, line)
	}
}

func opPchar(i *Instance, _ string, line int) error {
	if i.stack.Len() == 0 {
		return newError(ErrPcharEmpty, line, "pchar")
	}
	v := i.stack.Front()
	if v < 0 || v > 127 {
		return newError(ErrPcharRange, line, "pchar")
	}
	return i.output.WriteByte(byte(v))
}

func opPstr(i *Instance, _ string, _ int) error {
	for v := range i.stack.All() {
		if v <= 0 || v > 127 {
			break
		}
		if err := i.output.WriteByte(byte(v)); err != nil {
			return err
		}
	}
	return i.output.WriteByte('\n')
}

func opRotl(i *Instance, _ string, _ int) error {
	i.stack.RotateLeft()
	return nil
}

func opRotr(i *Instance, _ string, _ int) error {
	i.stack.RotateRight()
	return nil
}

func opStack(i *Instance, _ string, _ int) error {
	i.mode = StackMode
	return nil
}

func opQueue(i *Instance, _ string, _ int) error {
	i.mode = QueueMode
	return nil
}
