package fwdlist

import (
	"github.com/ydb-platform/fwdlist/trace"
)

// Sort sorts the list in place in ascending order. The sort is stable.
func (l *List[T]) Sort() {
	onDone := trace.ListOnSort(l.trace, l.size)
	mergeSort(l)
	onDone(l.size)
}

// Split keeps the first ceil(n/2) elements in l and moves the remaining
// floor(n/2) elements, in order, to the returned list. No nodes are allocated.
func (l *List[T]) Split() *List[T] {
	onDone := trace.ListOnSplit(l.trace, l.size)
	back := l.split()
	onDone(l.size, back.size)

	return back
}

// Merge moves every node of other into l. Both lists must be sorted by l's
// comparator. The result is sorted and stable: on equal values nodes of l
// come before nodes of other. other is left empty.
//
// Merging nil or a list into itself does nothing.
func (l *List[T]) Merge(other *List[T]) {
	if other == nil || other == l {
		return
	}
	onDone := trace.ListOnMerge(l.trace, l.size, other.size)
	l.merge(other)
	onDone(l.size)
}

func mergeSort[T any](l *List[T]) {
	if l.size < 2 {
		return
	}
	back := l.split()
	mergeSort(l)
	mergeSort(back)
	l.merge(back)
}

func (l *List[T]) split() *List[T] {
	back := l.sibling()
	if l.size < 2 {
		return back
	}

	frontSize := (l.size + 1) / 2
	last := l.head
	for i := 1; i < frontSize; i++ {
		last = last.next
	}
	back.head = last.next
	last.next = nil

	back.size = l.size - frontSize
	l.size = frontSize

	return back
}

func (l *List[T]) merge(other *List[T]) {
	if other.head == nil {
		return
	}
	if l.head == nil {
		l.head, l.size = other.head, other.size
		other.head, other.size = nil, 0

		return
	}

	compare := l.comparator()
	lhs, rhs := l.head, other.head
	var tail *node[T]
	if compare(lhs.value, rhs.value) <= 0 {
		tail, lhs = lhs, lhs.next
	} else {
		tail, rhs = rhs, rhs.next
	}
	l.head = tail

	for lhs != nil && rhs != nil {
		if compare(lhs.value, rhs.value) <= 0 {
			tail.next = lhs
			lhs = lhs.next
		} else {
			tail.next = rhs
			rhs = rhs.next
		}
		tail = tail.next
	}
	if lhs != nil {
		tail.next = lhs
	} else {
		tail.next = rhs
	}

	l.size += other.size
	other.head, other.size = nil, 0
}
