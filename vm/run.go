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

	"github.com/pkg/errors"
)

// Run reads instructions from r and executes them in sequence until r returns
// io.EOF or an instruction fails.
//
// On normal completion, Run returns nil. Otherwise it returns the first error
// encountered, which is an *Error for interpreter errors. Output written before
// the error is kept.
//
// Run does not release the stack; call Shutdown once done with the instance.
func (i *Instance) Run(r InstructionReader) (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @line %d, depth %d", i.line, i.stack.Len())
			default:
				panic(e)
			}
		}
		err = i.halt(err)
	}()
	i.state = Running
	for {
		ins, rerr := r.Next()
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
		if err = i.Execute(ins.Op, ins.Arg, ins.Line); err != nil {
			return err
		}
	}
}
