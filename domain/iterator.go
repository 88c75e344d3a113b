package domain

import "slices"

// Iterator walks an independent copy of a room collection taken at creation time.
// Later mutations of the room never change its contents or length.
type Iterator[T any] struct {
	items  []T
	cursor int
}

func NewIterator[T any](source []T) *Iterator[T] {
	return &Iterator[T]{items: slices.Clone(source)}
}

// HasNext reports whether the cursor still points at an element.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < len(it.items)
}

// Next advances the cursor, it is a no-op once past the end.
func (it *Iterator[T]) Next() {
	if it.HasNext() {
		it.cursor++
	}
}

// Current returns the element under the cursor without advancing.
func (it *Iterator[T]) Current() (T, bool) {
	var zero T
	if !it.HasNext() {
		return zero, false
	}
	return it.items[it.cursor], true
}

func (it *Iterator[T]) Len() int {
	return len(it.items)
}

func (it *Iterator[T]) Remaining() int {
	return len(it.items) - it.cursor
}
