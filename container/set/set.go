// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package set implements an insertion-ordered set backed by a slice,
// together with the classic set algebra over two sets.
//
// Membership is decided by ==, so every operation is linear in the size of
// the set it searches. Results of the algebra functions are always new sets
// that share no storage with their operands.
package set

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/wangtaoking1/setkit/errors"
)

var (
	// ErrInvalidArgument is returned when an element or an operand is absent,
	// or an element cannot be compared.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when removing an element that is not in the set.
	ErrNotFound = errors.New("not found")
)

// Set is a collection of unique elements which remembers insertion order.
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	items []T
}

// New creates a set holding the given items, in order, duplicates dropped.
// It panics if any item is absent; use FromSlice to get the error instead.
func New[T comparable](items ...T) *Set[T] {
	s, err := FromSlice(items)
	if err != nil {
		panic(err)
	}

	return s
}

// FromSlice creates a set holding the given items, in order, duplicates dropped.
func FromSlice[T comparable](items []T) (*Set[T], error) {
	s := &Set[T]{}
	if err := s.AddAll(items...); err != nil {
		return nil, err
	}

	return s, nil
}

// Add inserts item at the end of the set. Adding an element that is already
// present does nothing.
func (s *Set[T]) Add(item T) error {
	if err := checkElement(item); err != nil {
		return errors.WithMessage(err, "add")
	}
	s.add(item)

	return nil
}

// AddAll inserts items in order. Either every item is accepted or the set is
// left untouched.
func (s *Set[T]) AddAll(items ...T) error {
	for i, item := range items {
		if err := checkElement(item); err != nil {
			return errors.WithMessagef(err, "add at index %d", i)
		}
	}
	for _, item := range items {
		s.add(item)
	}

	return nil
}

func (s *Set[T]) add(item T) {
	if !s.Contains(item) {
		s.items = append(s.items, item)
	}
}

// Remove deletes item from the set, keeping the order of the other elements.
func (s *Set[T]) Remove(item T) error {
	if err := checkElement(item); err != nil {
		return errors.WithMessage(err, "remove")
	}

	i := slices.Index(s.items, item)
	if i < 0 {
		return errors.WithMessagef(ErrNotFound, "element %v", item)
	}
	s.items = slices.Delete(s.items, i, i+1)
	// release the shifted-out slot
	var zero T
	s.items[:len(s.items)+1][len(s.items)] = zero

	return nil
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.items = nil
}

// Contains reports whether item is in the set. Elements the set cannot hold
// are never contained.
func (s *Set[T]) Contains(item T) bool {
	if !isComparable(item) {
		return false
	}
	return slices.Contains(s.items, item)
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Count is an alias of Len.
func (s *Set[T]) Count() int {
	return s.Len()
}

// Empty reports whether the set has no elements.
func (s *Set[T]) Empty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the elements in insertion order.
func (s *Set[T]) Items() []T {
	return slices.Clone(s.items)
}

// All returns an iterator over the elements in insertion order. Each call
// starts a fresh pass. Mutating the set while iterating is not supported.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{items: slices.Clone(s.items)}
}

func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, item := range s.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, item)
	}
	b.WriteByte('}')

	return b.String()
}

// checkElement rejects absent items and items whose dynamic type cannot be
// compared with ==, such as a slice stored in an interface.
func checkElement[T comparable](item T) error {
	if isAbsent(item) {
		return errors.WithMessage(ErrInvalidArgument, "absent element")
	}
	if !isComparable(item) {
		return errors.WithMessagef(ErrInvalidArgument, "element of incomparable type %T", item)
	}

	return nil
}

// isComparable reports whether == on item can not panic.
func isComparable[T comparable](item T) bool {
	v := any(item)
	return v == nil || reflect.ValueOf(v).Comparable()
}

// isAbsent reports whether item is a nil value of a nillable kind.
func isAbsent[T comparable](item T) bool {
	v := any(item)
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
