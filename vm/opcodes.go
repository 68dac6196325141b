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

import "strings"

// CommentMarker starts a comment line.
const CommentMarker = "#"

type opFunc func(i *Instance, arg string, line int) error

var opcodes = [...]struct {
	name string
	fn   opFunc
}{
	{"push", opPush},
	{"pall", opPall},
	{"pint", opPint},
	{"pop", opPop},
	{"swap", opSwap},
	{"add", binOp("add", add)},
	{"sub", binOp("sub", sub)},
	{"div", divOp("div", div)},
	{"mul", binOp("mul", mul)},
	{"mod", divOp("mod", mod)},
	{"nop", opNop},
	{"pchar", opPchar},
	{"pstr", opPstr},
	{"rotl", opRotl},
	{"rotr", opRotr},
	{"stack", opStack},
	{"queue", opQueue},
}

var opcodeIndex = make(map[string]opFunc, len(opcodes))

func init() {
	for _, op := range opcodes {
		opcodeIndex[op.name] = op.fn
	}
}

// Opcodes returns the names of all supported opcodes.
func Opcodes() []string {
	names := make([]string, len(opcodes))
	for n, op := range opcodes {
		names[n] = op.name
	}
	return names
}

func isComment(op string) bool {
	return op == "" || strings.HasPrefix(op, CommentMarker)
}
