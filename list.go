package fwdlist

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/ydb-platform/fwdlist/internal/xstring"
	"github.com/ydb-platform/fwdlist/trace"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly-linked list of values ordered by the comparator it was created with.
//
// The zero value is an empty list ordered by the natural order of integers,
// floats and strings; other element types need NewFunc. A List is not safe
// for concurrent use.
type List[T any] struct {
	head    *node[T]
	size    int
	compare func(lhs, rhs T) int
	trace   *trace.List
}

// New returns an empty list ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option) *List[T] {
	return newList(cmp.Compare[T], opts...)
}

// Of returns a list holding values in the given order.
func Of[T cmp.Ordered](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice returns a list holding values in the given order.
func FromSlice[T cmp.Ordered](values []T, opts ...Option) *List[T] {
	return NewFunc(cmp.Compare[T], values, opts...)
}

// NewFunc returns a list holding values in the given order and ordered by compare.
// compare must define a total order and return a negative number when lhs < rhs,
// a positive number when lhs > rhs and zero when they are equal.
func NewFunc[T any](compare func(lhs, rhs T) int, values []T, opts ...Option) *List[T] {
	l := newList(compare, opts...)
	l.PushBack(values...)

	return l
}

func newList[T any](compare func(lhs, rhs T) int, opts ...Option) *List[T] {
	c := newConfig(opts...)

	return &List[T]{
		compare: compare,
		trace:   c.trace,
	}
}

// sibling returns an empty list sharing comparator and trace with l.
func (l *List[T]) sibling() *List[T] {
	return &List[T]{
		compare: l.compare,
		trace:   l.trace,
	}
}

// Clone returns a deep copy of l. Values are copied using assignment.
func (l *List[T]) Clone() *List[T] {
	c := l.sibling()
	var tail *node[T]
	for n := l.head; n != nil; n = n.next {
		cp := &node[T]{value: n.value}
		if tail == nil {
			c.head = cp
		} else {
			tail.next = cp
		}
		tail = cp
	}
	c.size = l.size

	return c
}

// PushFront inserts value before the first element.
func (l *List[T]) PushFront(value T) {
	l.head = &node[T]{
		value: value,
		next:  l.head,
	}
	l.size++
}

// PushBack appends values to the end of the list. It walks the chain once per call.
func (l *List[T]) PushBack(values ...T) {
	if len(values) == 0 {
		return
	}
	var tail *node[T]
	for n := l.head; n != nil; n = n.next {
		tail = n
	}
	for _, v := range values {
		n := &node[T]{value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	l.size += len(values)
}

// PopFront removes the first element and returns it. On an empty list it does nothing.
func (l *List[T]) PopFront() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.size--

	return n.value, true
}

// Front returns the first element or the zero value of T when the list is empty.
// Use Empty to tell the two apart.
func (l *List[T]) Front() (value T) {
	if l.head == nil {
		return value
	}

	return l.head.value
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Clear releases every node one by one so teardown never recurses over the chain.
func (l *List[T]) Clear() {
	onDone := trace.ListOnClear(l.trace, l.size)
	defer onDone()

	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.size = 0
}

// All returns an iterator over the values from front to back.
// The list must not be modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements from front to back in a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}

	return values
}

func (l *List[T]) String() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(b, n.value)
	}
	b.WriteByte(']')

	return b.String()
}
