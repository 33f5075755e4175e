// SPDX-License-Identifier: MIT

// Package dlist provides List, a generic doubly linked list whose insertions
// return stable *Node handles. A handle removes its node in O(1) without any
// search and stays valid across unrelated insertions and removals in the same
// or other lists.
//
// Every node records the list that owns it, so a stale handle (already
// removed, or belonging to another list) is detected and rejected by Remove
// instead of corrupting the list.
//
// Complexity:
//
//	PushFront / PushBack / Remove / Len / Front / Back   O(1)
//	All / Values / Clear                                 O(n)
//
// A List is not safe for concurrent mutation.
package dlist

import "iter"

// Node is a handle to one element of a List.
type Node[T any] struct {
	next, prev *Node[T]
	list       *List[T]

	// Value is the element stored in this node.
	Value T
}

// List reports the list that owns n, or nil once n has been removed.
func (n *Node[T]) List() *List[T] { return n.list }

// Next returns the following node, or nil at the back.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil || n.next == &n.list.root {
		return nil
	}

	return n.next
}

// Prev returns the preceding node, or nil at the front.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil || n.prev == &n.list.root {
		return nil
	}

	return n.prev
}

// List is a doubly linked list with a sentinel root. The zero value is an
// empty list ready to use. A List must not be copied after first use.
type List[T any] struct {
	root   Node[T] // sentinel; root.next is the front, root.prev the back
	length int
}

// New returns an empty list.
func New[T any]() *List[T] { return new(List[T]).init() }

func (l *List[T]) init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.length = 0

	return l
}

// lazyInit lets the zero value work.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// Len returns the number of nodes. O(1).
func (l *List[T]) Len() int { return l.length }

// Front returns the first node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	if l.length == 0 {
		return nil
	}

	return l.root.next
}

// Back returns the last node, or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	if l.length == 0 {
		return nil
	}

	return l.root.prev
}

// PushFront inserts v at the front and returns its handle. O(1).
func (l *List[T]) PushFront(v T) *Node[T] {
	l.lazyInit()

	return l.insertAfter(&Node[T]{Value: v}, &l.root)
}

// PushBack inserts v at the back and returns its handle. O(1).
func (l *List[T]) PushBack(v T) *Node[T] {
	l.lazyInit()

	return l.insertAfter(&Node[T]{Value: v}, l.root.prev)
}

func (l *List[T]) insertAfter(n, at *Node[T]) *Node[T] {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	n.list = l
	l.length++

	return n
}

// Remove unlinks n in O(1) and invalidates the handle. It returns false, and
// leaves the list untouched, when n is nil, already removed, or owned by a
// different list.
func (l *List[T]) Remove(n *Node[T]) bool {
	if n == nil || n.list != l {
		return false
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.list = nil
	l.length--

	return true
}

// All iterates values front to back. The list must not be mutated while
// iterating, except for removing the node that was just yielded.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Front(); n != nil; {
			next := n.Next()
			if !yield(n.Value) {
				return
			}
			n = next
		}
	}
}

// Values returns a newly allocated slice of the values, front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for n := l.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}

	return out
}

// Clear removes every node. Each handle is detached, so later Remove calls
// with old handles are rejected. O(n).
func (l *List[T]) Clear() {
	for n := l.Front(); n != nil; {
		next := n.Next()
		n.next, n.prev, n.list = nil, nil, nil
		n = next
	}
	l.init()
}
