package dialog

import (
	"github.com/sasha-s/go-deadlock"
)

// slot owns the single live native value of a builder. It is either filled
// or, once the value has been taken, empty for good.
type slot[T any] struct {
	mutex  deadlock.Mutex
	value  T
	filled bool
}

func newSlot[T any](value T) *slot[T] {
	return &slot[T]{value: value, filled: true}
}

// update replaces the value with fn(value). It returns false without calling
// fn when the slot is empty.
func (s *slot[T]) update(fn func(T) T) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.filled {
		return false
	}
	s.value = fn(s.value)
	return true
}

// take moves the value out, leaving the slot empty. It returns false when the
// slot was already empty.
func (s *slot[T]) take() (T, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var zero T
	if !s.filled {
		return zero, false
	}
	value := s.value
	s.value = zero
	s.filled = false
	return value, true
}

func (s *slot[T]) isFilled() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.filled
}
