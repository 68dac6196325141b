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

// The monty command line tool runs Monty bytecode files. It is a showcase for
// the package github.com/ayoubhayoune/monty/vm.
//
// Usage:
//
//	monty [options] file
//
//	-config filename
//		  load settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the stack upon normal exit
//	-list
//		  print the parsed program and exit without running it
//	-max-depth int
//		  maximum stack depth, 0 for unlimited
//	-queue
//		  start in queue mode
//	-trace
//		  trace executed instructions on stderr
//
// Exactly one file must be given, otherwise monty prints "USAGE: monty file"
// and exits with status 1. Any error while running the program is reported on
// stderr as a single line, e.g. "L4: unknown instruction frobnicate", and
// the exit status is 1. On normal completion the exit status is 0.
//
// -debug: errors that are not interpreter errors (I/O errors mostly) are
// printed along with a stack trace.
//
// -max-depth: pushing more values than this fails with "Error: malloc failed".
//
// -config: settings can also be read from a TOML file. Flags given on the
// command line take precedence over the file:
//
//	trace = false
//	debug = false
//	dump = false
//	mode = "stack"	# or "queue"
//	max-depth = 0
//
// Standard output is buffered unless it is a terminal.
package main
