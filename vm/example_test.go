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

package vm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/ayoubhayoune/monty/asm"
	"github.com/ayoubhayoune/monty/vm"
)

// Shows how to run a program read from an io.Reader and handle errors.
func ExampleInstance_Run() {
	code := `push 5
push 3
add
pall
pop
pop
`
	i, err := vm.New(vm.Output(os.Stdout))
	if err != nil {
		panic(err)
	}
	err = i.Run(asm.NewScanner("example.m", strings.NewReader(code)))
	i.Shutdown()
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println("exit code:", vm.ExitCode(err))

	// Output:
	// 8
	// L6: can't pop an empty stack
	// exit code: 1
}

// Instructions can also be fed one at a time.
func ExampleInstance_Execute() {
	i, _ := vm.New(vm.Output(os.Stdout))
	defer i.Shutdown()

	for n, v := range []string{"1", "2", "3"} {
		i.Execute("push", v, n+1)
	}
	i.Execute("rotl", "", 4)
	i.Execute("pall", "", 5)
	err := i.Execute("div", "", 6)
	fmt.Println(err, i.Data())

	// Output:
	// 2
	// 1
	// 3
	// <nil> [0 3]
}

// In queue mode, push appends values at the bottom of the stack.
func ExampleStartMode() {
	i, _ := vm.New(vm.Output(os.Stdout), vm.StartMode(vm.QueueMode))
	defer i.Shutdown()

	p, _ := asm.Parse("queue.m", strings.NewReader("push 1\npush 2\npush 3\npall\nstack\npush 4\npint"))
	if err := i.Run(p.Reader()); err != nil {
		fmt.Println(err)
	}

	// Output:
	// 1
	// 2
	// 3
	// 4
}
