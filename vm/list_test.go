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
	"testing"

	"github.com/ayoubhayoune/monty/vm"
)

func sameCells(a, b []vm.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for n := range a {
		if a[n] != b[n] {
			return false
		}
	}
	return true
}

func newList(t *testing.T, limit int, values ...vm.Cell) *vm.List {
	t.Helper()
	l := vm.NewList(limit)
	// values are given head first
	for n := len(values) - 1; n >= 0; n-- {
		if err := l.PushFront(values[n]); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func checkList(t *testing.T, name string, l *vm.List, exp C) {
	t.Helper()
	if err := l.CheckLinks(); err != nil {
		t.Errorf("%s: %v", name, err)
	}
	if got := l.Values(); !sameCells(got, exp) {
		t.Errorf("%s: expected %v, got %v", name, exp, got)
	}
	if l.Len() != len(exp) {
		t.Errorf("%s: expected length %d, got %d", name, len(exp), l.Len())
	}
}

func TestList_pushPop(t *testing.T) {
	l := vm.NewList(0)
	checkList(t, "empty", l, nil)

	l.PushFront(1)
	l.PushFront(2)
	l.PushBack(0)
	checkList(t, "push", l, C{2, 1, 0})
	if l.Front() != 2 || l.Back() != 0 {
		t.Errorf("Front/Back: got %d/%d", l.Front(), l.Back())
	}

	if v := l.PopFront(); v != 2 {
		t.Errorf("PopFront: expected 2, got %d", v)
	}
	checkList(t, "pop", l, C{1, 0})
	l.PopFront()
	l.PopFront()
	checkList(t, "pop all", l, nil)

	l.PushBack(7)
	checkList(t, "push back on empty", l, C{7})
}

func TestList_slotReuse(t *testing.T) {
	l := newList(t, 0, 1, 2, 3)
	l.PopFront()
	l.PopFront()
	l.PushFront(4)
	l.PushFront(5)
	checkList(t, "reuse", l, C{5, 4, 3})
	if l.Slots() != 3 {
		t.Errorf("Expected released slots to be reused, got %d slots", l.Slots())
	}
}

func TestList_limit(t *testing.T) {
	l := newList(t, 2, 1, 2)
	err := l.PushFront(3)
	if vm.KindOf(err) != vm.ErrAlloc {
		t.Fatalf("Expected ErrAlloc, got %v", err)
	}
	if err = l.PushBack(3); vm.KindOf(err) != vm.ErrAlloc {
		t.Fatalf("Expected ErrAlloc, got %v", err)
	}
	checkList(t, "full", l, C{1, 2})
	l.PopFront()
	if err = l.PushFront(3); err != nil {
		t.Fatal(err)
	}
	checkList(t, "refill", l, C{3, 2})
}

func TestList_rotate(t *testing.T) {
	for _, tt := range []struct {
		name  string
		in    C
		left  C
		right C
	}{
		{"empty", nil, nil, nil},
		{"one", C{1}, C{1}, C{1}},
		{"two", C{1, 2}, C{2, 1}, C{2, 1}},
		{"three", C{1, 2, 3}, C{2, 3, 1}, C{3, 1, 2}},
		{"five", C{1, 2, 3, 4, 5}, C{2, 3, 4, 5, 1}, C{5, 1, 2, 3, 4}},
	} {
		l := newList(t, 0, tt.in...)
		l.RotateLeft()
		checkList(t, tt.name+" rotl", l, tt.left)
		l.RotateRight()
		checkList(t, tt.name+" rotl+rotr", l, tt.in)
		l.RotateRight()
		checkList(t, tt.name+" rotr", l, tt.right)
		l.RotateLeft()
		checkList(t, tt.name+" rotr+rotl", l, tt.in)
	}
}

func TestList_swapFront(t *testing.T) {
	l := newList(t, 0, 1, 2, 3)
	l.SwapFront()
	checkList(t, "swap", l, C{2, 1, 3})
}

func TestList_All(t *testing.T) {
	l := newList(t, 0, 1, 2, 3, 4)
	// early break
	var got C
	for v := range l.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if !sameCells(got, C{1, 2}) {
		t.Fatalf("Expected [1 2], got %v", got)
	}
	// restartable
	got = got[:0]
	for v := range l.All() {
		got = append(got, v)
	}
	if !sameCells(got, C{1, 2, 3, 4}) {
		t.Fatalf("Expected [1 2 3 4], got %v", got)
	}
}

func TestList_Clear(t *testing.T) {
	l := newList(t, 0, 1, 2, 3)
	l.Clear()
	checkList(t, "clear", l, nil)
	if l.Slots() != 0 {
		t.Fatalf("Clear should release the arena, %d slots left", l.Slots())
	}
	l.PushFront(9)
	checkList(t, "after clear", l, C{9})
}
