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

// Package asm turns Monty source code into instructions for the vm package.
//
// Source files contain one instruction per line:
//
//	push 1
//	push 2
//	# this is a comment
//	add
//	pall
//
// The first word of a line is the opcode, the rest of the line, if any, is its
// argument. Leading and trailing white space is ignored. The parser does not
// check opcodes nor arguments: this is done by the VM at execution time, so
// that an invalid instruction only fails once it is reached.
//
// Empty lines and lines starting with '#' are skipped. Line numbers always
// count from the first line of the file, skipped lines included.
package asm
