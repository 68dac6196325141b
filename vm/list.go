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

import "iter"

// nilNode marks the absence of a link.
const nilNode = -1

type node struct {
	n          Cell
	prev, next int
}

// List is a doubly-linked list of Cells backed by an arena of node slots.
// Released slots are chained through their next field and reused by later
// allocations, so indices stay stable for the lifetime of a node.
//
// The list only tracks its head. Reaching the tail takes a walk over all
// nodes, which is what RotateLeft, RotateRight, Back and PushBack do.
//
// The zero value is not usable, use NewList.
type List struct {
	nodes []node
	head  int
	free  int
	len   int
	limit int
}

// NewList returns an empty list. If limit is > 0, the list will refuse to hold
// more than limit nodes.
func NewList(limit int) *List {
	return &List{head: nilNode, free: nilNode, limit: limit}
}

func (l *List) alloc(v Cell) (int, error) {
	if l.limit > 0 && l.len >= l.limit {
		return nilNode, errAlloc
	}
	l.len++
	if p := l.free; p != nilNode {
		l.free = l.nodes[p].next
		l.nodes[p] = node{v, nilNode, nilNode}
		return p, nil
	}
	l.nodes = append(l.nodes, node{v, nilNode, nilNode})
	return len(l.nodes) - 1, nil
}

func (l *List) release(p int) {
	l.nodes[p] = node{0, nilNode, l.free}
	l.free = p
	l.len--
}

// tail walks the list and returns the index of the last node.
func (l *List) tail() int {
	p := l.head
	if p == nilNode {
		return p
	}
	for l.nodes[p].next != nilNode {
		p = l.nodes[p].next
	}
	return p
}

// Len returns the number of nodes in the list.
func (l *List) Len() int { return l.len }

// PushFront links a new node holding v at the head of the list.
func (l *List) PushFront(v Cell) error {
	p, err := l.alloc(v)
	if err != nil {
		return err
	}
	if l.head != nilNode {
		l.nodes[p].next = l.head
		l.nodes[l.head].prev = p
	}
	l.head = p
	return nil
}

// PushBack links a new node holding v after the tail of the list.
func (l *List) PushBack(v Cell) error {
	t := l.tail()
	p, err := l.alloc(v)
	if err != nil {
		return err
	}
	if t == nilNode {
		l.head = p
		return nil
	}
	l.nodes[t].next = p
	l.nodes[p].prev = t
	return nil
}

// PopFront unlinks the head node and returns its value. The list must not be
// empty.
func (l *List) PopFront() Cell {
	p := l.head
	v := l.nodes[p].n
	l.head = l.nodes[p].next
	if l.head != nilNode {
		l.nodes[l.head].prev = nilNode
	}
	l.release(p)
	return v
}

// Front returns the value at the head of the list. The list must not be empty.
func (l *List) Front() Cell {
	return l.nodes[l.head].n
}

// Back returns the value at the tail of the list. The list must not be empty.
func (l *List) Back() Cell {
	return l.nodes[l.tail()].n
}

// SwapFront exchanges the values of the first two nodes. The list must hold at
// least two nodes.
func (l *List) SwapFront() {
	a := &l.nodes[l.head]
	b := &l.nodes[a.next]
	a.n, b.n = b.n, a.n
}

// RotateLeft moves the head node to the tail. Lists with less than two nodes
// are left unchanged.
func (l *List) RotateLeft() {
	if l.len < 2 {
		return
	}
	t := l.tail()
	h := l.head
	l.head = l.nodes[h].next
	l.nodes[l.head].prev = nilNode
	l.nodes[t].next = h
	l.nodes[h].prev = t
	l.nodes[h].next = nilNode
}

// RotateRight moves the tail node to the head. Lists with less than two nodes
// are left unchanged.
func (l *List) RotateRight() {
	if l.len < 2 {
		return
	}
	t := l.tail()
	l.nodes[l.nodes[t].prev].next = nilNode
	l.nodes[t].prev = nilNode
	l.nodes[t].next = l.head
	l.nodes[l.head].prev = t
	l.head = t
}

// All returns an iterator over the list values, from head to tail.
func (l *List) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for p := l.head; p != nilNode; p = l.nodes[p].next {
			if !yield(l.nodes[p].n) {
				return
			}
		}
	}
}

// Values returns a copy of the list values, from head to tail.
func (l *List) Values() []Cell {
	v := make([]Cell, 0, l.len)
	for n := range l.All() {
		v = append(v, n)
	}
	return v
}

// Clear releases all nodes, including the arena itself.
func (l *List) Clear() {
	l.nodes = nil
	l.head = nilNode
	l.free = nilNode
	l.len = 0
}
