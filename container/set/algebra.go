// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package set

import (
	"github.com/wangtaoking1/setkit/errors"
	"github.com/wangtaoking1/setkit/utils"
)

func checkOperands[T comparable](a, b *Set[T]) error {
	switch {
	case a == nil && b == nil:
		return errors.WithMessage(ErrInvalidArgument, "both sets are nil")
	case a == nil:
		return errors.WithMessage(ErrInvalidArgument, "first set is nil")
	case b == nil:
		return errors.WithMessage(ErrInvalidArgument, "second set is nil")
	}

	return nil
}

// Union returns the elements of a followed by the elements of b that are
// not in a.
func Union[T comparable](a, b *Set[T]) (*Set[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	result := &Set[T]{items: make([]T, 0, a.Len()+b.Len())}
	for _, item := range a.items {
		result.add(item)
	}
	for _, item := range b.items {
		result.add(item)
	}

	return result, nil
}

// Intersection returns the elements found in both a and b. The smaller set
// drives the scan, b when both have the same size, and the result follows
// its order.
func Intersection[T comparable](a, b *Set[T]) (*Set[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	outer, inner := b, a
	if a.Len() < b.Len() {
		outer, inner = a, b
	}

	result := &Set[T]{items: make([]T, 0, utils.Min(a.Len(), b.Len()))}
	for _, item := range outer.items {
		if inner.Contains(item) {
			result.items = append(result.items, item)
		}
	}

	return result, nil
}

// Difference returns the elements of a that are not in b, in a's order.
func Difference[T comparable](a, b *Set[T]) (*Set[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	return difference(a, b), nil
}

func difference[T comparable](a, b *Set[T]) *Set[T] {
	result := &Set[T]{}
	for _, item := range a.items {
		if !b.Contains(item) {
			result.items = append(result.items, item)
		}
	}

	return result
}

// SymmetricDifference returns the elements of a not in b, in a's order,
// followed by the elements of b not in a, in b's order.
func SymmetricDifference[T comparable](a, b *Set[T]) (*Set[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	result := difference(a, b)
	// disjoint from a-b, no dedup needed
	result.items = append(result.items, difference(b, a).items...)

	return result, nil
}

// Subset reports whether every element of a is in b. An empty a is a subset
// of any b.
func Subset[T comparable](a, b *Set[T]) (bool, error) {
	if err := checkOperands(a, b); err != nil {
		return false, err
	}

	for _, item := range a.items {
		if !b.Contains(item) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether a and b hold the same elements, regardless of order.
func Equal[T comparable](a, b *Set[T]) (bool, error) {
	if err := checkOperands(a, b); err != nil {
		return false, err
	}
	if a.Len() != b.Len() {
		return false, nil
	}

	return Subset(a, b)
}
