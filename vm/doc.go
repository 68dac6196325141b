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

// Package vm implements the Monty bytecode interpreter.
//
// A Monty program is a sequence of instructions operating on a list of
// integers, used either as a stack (the default) or as a queue. The list is
// stored in a List, a doubly-linked list backed by an arena of reusable node
// slots.
//
// An Instance owns exactly one List. Instructions are fed to it one at a time
// with Execute, or streamed from an InstructionReader with Run (see package
// github.com/ayoubhayoune/monty/asm for a reader that parses program text).
//
// Supported opcodes:
//
//	opcode	arg	description
//	------	---	-----------------------------------------------------------------
//	push	n	push n on the stack (at the tail in queue mode)
//	pall		print all values, top first, one per line
//	pint		print the value on top of the stack
//	pop		remove the value on top of the stack
//	swap		swap the two values on top of the stack
//	add		replace the two top values a (top) and b with b+a
//	sub		replace the two top values with b-a
//	mul		replace the two top values with b*a
//	div		replace the two top values with b/a
//	mod		replace the two top values with b%a
//	nop		do nothing
//	pchar		print the value on top of the stack as an ASCII character
//	pstr		print values as ASCII characters, up to the first 0 or non ASCII value, then a newline
//	rotl		move the top value to the bottom
//	rotr		move the bottom value to the top
//	stack		switch to stack (LIFO) mode
//	queue		switch to queue (FIFO) mode
//
// Lines whose opcode starts with '#' are comments.
//
// Errors are never recovered: Execute and Run return an *Error describing the
// failure, with a message in the exact format expected by the monty command.
// The caller is responsible for reporting it, calling Shutdown and exiting.
package vm
