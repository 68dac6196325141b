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

import "github.com/pkg/errors"

// CheckLinks verifies the list invariants: no back link before the head,
// mutually inverse prev/next links, and a node count matching Len.
func (l *List) CheckLinks() error {
	if l.head == nilNode {
		if l.len != 0 {
			return errors.Errorf("empty list with length %d", l.len)
		}
		return nil
	}
	if p := l.nodes[l.head].prev; p != nilNode {
		return errors.Errorf("head has a back link to %d", p)
	}
	count := 0
	for p := l.head; p != nilNode; p = l.nodes[p].next {
		count++
		if count > len(l.nodes) {
			return errors.New("cycle detected")
		}
		if n := l.nodes[p].next; n != nilNode && l.nodes[n].prev != p {
			return errors.Errorf("broken link %d <-> %d", p, n)
		}
	}
	if count != l.len {
		return errors.Errorf("counted %d nodes, length is %d", count, l.len)
	}
	return nil
}

// Slots returns the number of slots allocated in the arena.
func (l *List) Slots() int { return len(l.nodes) }

// Stack gives tests access to the instance's list.
func (i *Instance) Stack() *List { return i.stack }
