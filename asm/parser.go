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

package asm

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/ayoubhayoune/monty/vm"
	"github.com/pkg/errors"
)

// maxLineSize is the longest source line accepted by a Scanner.
const maxLineSize = 1 << 20

// Scanner reads Monty source code line by line and returns instructions. It
// implements vm.InstructionReader.
type Scanner struct {
	name string
	s    *bufio.Scanner
	line int
	err  error
}

// NewScanner returns a new Scanner reading from r.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func NewScanner(name string, r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Scanner{name: name, s: s}
}

// splitLine returns the first field of a line and the trimmed remainder.
func splitLine(l string) (op, arg string) {
	l = strings.TrimLeftFunc(l, unicode.IsSpace)
	end := strings.IndexFunc(l, unicode.IsSpace)
	if end < 0 {
		return l, ""
	}
	return l[:end], strings.TrimSpace(l[end:])
}

// Next returns the next instruction. Empty lines and comment lines are
// skipped. At the end of input, Next returns io.EOF.
func (s *Scanner) Next() (vm.Instruction, error) {
	if s.err != nil {
		return vm.Instruction{}, s.err
	}
	for s.s.Scan() {
		s.line++
		op, arg := splitLine(s.s.Text())
		if op == "" || strings.HasPrefix(op, vm.CommentMarker) {
			continue
		}
		return vm.Instruction{Line: s.line, Op: op, Arg: arg}, nil
	}
	if err := s.s.Err(); err != nil {
		s.err = errors.Wrapf(err, "%s:%d", s.name, s.line+1)
	} else {
		s.err = io.EOF
	}
	return vm.Instruction{}, s.err
}

// Line returns the number of the last line read.
func (s *Scanner) Line() int {
	return s.line
}
