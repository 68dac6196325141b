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
	"fmt"
	"io"

	"github.com/ayoubhayoune/monty/internal/ngi"
	"github.com/ayoubhayoune/monty/vm"
)

// Program is a fully parsed program. Use it as a vm.InstructionReader with
// Reader.
type Program []vm.Instruction

// Parse reads all instructions from the supplied io.Reader.
//
// Then name parameter is used only in error messages to name the source of the
// error.
func Parse(name string, r io.Reader) (Program, error) {
	var p Program
	s := NewScanner(name, r)
	for {
		ins, err := s.Next()
		if err == io.EOF {
			return p, nil
		}
		if err != nil {
			return nil, err
		}
		p = append(p, ins)
	}
}

type programReader struct {
	p   Program
	pos int
}

func (r *programReader) Next() (vm.Instruction, error) {
	if r.pos >= len(r.p) {
		return vm.Instruction{}, io.EOF
	}
	ins := r.p[r.pos]
	r.pos++
	return ins, nil
}

// Reader returns a vm.InstructionReader that replays the program from the
// start.
func (p Program) Reader() vm.InstructionReader {
	return &programReader{p: p}
}

// Disassemble writes a normalized listing of the program to the specified
// io.Writer, one instruction per line prefixed with its source line number.
// It returns any write error.
func (p Program) Disassemble(w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	for _, ins := range p {
		if ins.Arg == "" {
			fmt.Fprintf(ew, "% 6d\t%s\n", ins.Line, ins.Op)
		} else {
			fmt.Fprintf(ew, "% 6d\t%s %s\n", ins.Line, ins.Op, ins.Arg)
		}
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
