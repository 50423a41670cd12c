package fwdlist

import (
	"cmp"
	"fmt"
	"reflect"
)

// orderedCompare orders integers, floats and strings, named types included.
// Zero-value lists fall back to it since they carry no comparator.
func orderedCompare[T any](lhs, rhs T) int {
	l, r := reflect.ValueOf(lhs), reflect.ValueOf(rhs)
	switch l.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(l.Int(), r.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(l.Uint(), r.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(l.Float(), r.Float())
	case reflect.String:
		return cmp.Compare(l.String(), r.String())
	default:
		panic(fmt.Sprintf("fwdlist: %T has no natural order, create the list with NewFunc", lhs))
	}
}

func (l *List[T]) comparator() func(lhs, rhs T) int {
	if l.compare == nil {
		return orderedCompare[T]
	}

	return l.compare
}
