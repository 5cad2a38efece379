package cpu

import (
	"fmt"
	"strings"
)

const (
	PREVIEW_LIMIT = 5 // Default number of stack entries shown by a preview.
)

// Stack is a LIFO growing at the tail of Data.
type Stack[T fmt.Stringer] struct {
	Data []T
}

func (s *Stack[T]) Push(value T) {
	s.Data = append(s.Data, value)
}

func (s *Stack[T]) Pop() (value T, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack[T]) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.Data)
}

func (s *Stack[T]) Peek() (value T, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack[T]) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// Preview renders at most limit entries from the top of the stack,
// marking a truncated bottom with "...". A limit < 1 renders everything.
func (s *Stack[T]) Preview(limit int) string {
	var words []string

	data := s.Data
	if limit > 0 && len(data) > limit {
		words = append(words, "...")
		data = data[len(data)-limit:]
	}

	for _, value := range data {
		words = append(words, value.String())
	}

	return "[" + strings.Join(words, " ") + "]"
}
