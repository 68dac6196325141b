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

package asm_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ayoubhayoune/monty/asm"
	"github.com/ayoubhayoune/monty/vm"
)

func ExampleNewScanner() {
	code := `
# print "Hi"
push 0
push 105
push 72
pstr
`
	i, err := vm.New(vm.Output(os.Stdout))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer i.Shutdown()

	if err = i.Run(asm.NewScanner("hi.m", strings.NewReader(code))); err != nil {
		fmt.Println(err)
	}

	// Output:
	// Hi
}

func ExampleParse() {
	code := `push 1
push 2
    # indented comment
swap   ( not a comment, just an ignored argument )
pall`

	p, err := asm.Parse("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	r := p.Reader()
	for {
		ins, err := r.Next()
		if err == io.EOF {
			break
		}
		fmt.Printf("%d: %s %q\n", ins.Line, ins.Op, ins.Arg)
	}

	// Output:
	// 1: push "1"
	// 2: push "2"
	// 4: swap "( not a comment, just an ignored argument )"
	// 5: pall ""
}
