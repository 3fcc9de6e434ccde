// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package set

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangtaoking1/setkit/errors"
	"github.com/wangtaoking1/setkit/utils"
)

func TestNew(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := New[int]()
		assert.True(t, s.Empty())
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Items())
	})

	t.Run("duplicates are dropped in first-seen order", func(t *testing.T) {
		s := New(3, 1, 3, 2, 1)
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, []int{3, 1, 2}, s.Items())
	})

	t.Run("zero value is an element", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, New(0, 1).Items())
		assert.True(t, New("", "a").Contains(""))
	})

	t.Run("absent item panics", func(t *testing.T) {
		assert.Panics(t, func() { New[*int](utils.Ptr(1), nil) })
	})
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set[string]
	assert.True(t, s.Empty())
	require.NoError(t, s.Add("a"))
	assert.Equal(t, []string{"a"}, s.Items())
}

func TestFromSlice(t *testing.T) {
	items := []string{"foo", "bar", "foo"}
	s, err := FromSlice(items)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, s.Items())

	items[1] = "baz"
	assert.True(t, s.Contains("bar"), "set must not alias the input slice")

	_, err = FromSlice([]error{errors.New("x"), nil})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestSet_Add(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		s := New[string]()
		for _, item := range []string{"foo", "bar", "baz"} {
			require.NoError(t, s.Add(item))
		}
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		s := New(1, 2)
		require.NoError(t, s.Add(1))
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []int{1, 2}, s.Items())
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		s := New[*int]()
		err := s.Add(nil)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.True(t, s.Empty())
	})

	t.Run("nil interface is rejected", func(t *testing.T) {
		s := New[fmt.Stringer]()
		assert.True(t, errors.Is(s.Add(nil), ErrInvalidArgument))
	})

	t.Run("nil channel is rejected", func(t *testing.T) {
		s := New[chan int]()
		var ch chan int
		assert.True(t, errors.Is(s.Add(ch), ErrInvalidArgument))
		assert.NoError(t, s.Add(make(chan int)))
	})

	t.Run("pointers compare by identity", func(t *testing.T) {
		p := utils.Ptr(7)
		s := New(p)
		require.NoError(t, s.Add(utils.Ptr(7)))
		require.NoError(t, s.Add(p))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("uuid elements", func(t *testing.T) {
		id := uuid.New()
		s := New(id, uuid.Nil)
		require.NoError(t, s.Add(id))
		assert.Equal(t, []uuid.UUID{id, uuid.Nil}, s.Items())
	})

	t.Run("incomparable dynamic type is rejected", func(t *testing.T) {
		s := New[any](1)
		assert.NotPanics(t, func() {
			err := s.Add([]int{1})
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Contains(t, err.Error(), "incomparable type []int")
			assert.True(t, errors.Is(s.Add([]int{2}), ErrInvalidArgument))
			assert.True(t, errors.Is(s.Add(map[string]int{}), ErrInvalidArgument))
			assert.True(t, errors.Is(s.AddAll(2, []int{3}), ErrInvalidArgument))
			assert.True(t, errors.Is(s.Remove([]int{1}), ErrInvalidArgument))
			assert.False(t, s.Contains([]int{1}))
		})
		assert.Equal(t, []any{1}, s.Items())
	})
}

func TestSet_AddAll(t *testing.T) {
	t.Run("all accepted", func(t *testing.T) {
		s := New(1)
		require.NoError(t, s.AddAll(2, 1, 3))
		assert.Equal(t, []int{1, 2, 3}, s.Items())
	})

	t.Run("absent item leaves the set unchanged", func(t *testing.T) {
		a, b := utils.Ptr("a"), utils.Ptr("b")
		s := New(a)
		err := s.AddAll(b, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "index 1")
		assert.Equal(t, []*string{a}, s.Items())
	})
}

func TestSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := New("foo", "bar", "baz", "123")
		require.NoError(t, s.Remove("bar"))
		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := New("foo", "bar", "baz", "123")
		require.NoError(t, s.Remove("foo"))
		assert.Equal(t, []string{"bar", "baz", "123"}, s.Items())
		assert.False(t, s.Contains("foo"))
	})

	t.Run("remove existing item from the end", func(t *testing.T) {
		s := New("foo", "bar", "baz", "123")
		require.NoError(t, s.Remove("123"))
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})

	t.Run("missing item", func(t *testing.T) {
		s := New(1, 2, 3)
		err := s.Remove(4)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Contains(t, err.Error(), "element 4")
		assert.Equal(t, []int{1, 2, 3}, s.Items())
	})

	t.Run("remove from empty set", func(t *testing.T) {
		s := New[int]()
		assert.True(t, errors.Is(s.Remove(1), ErrNotFound))
	})

	t.Run("absent item", func(t *testing.T) {
		s := New(utils.Ptr(1))
		assert.True(t, errors.Is(s.Remove(nil), ErrInvalidArgument))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("vacated slot is cleared", func(t *testing.T) {
		a, b, c := utils.Ptr(1), utils.Ptr(2), utils.Ptr(3)
		s := New(a, b, c)
		require.NoError(t, s.Remove(a))
		assert.Equal(t, []*int{b, c}, s.Items())
		assert.Nil(t, s.items[:3][2])
	})

	t.Run("remove then add again goes to the end", func(t *testing.T) {
		s := New(1, 2, 3)
		require.NoError(t, s.Remove(1))
		require.NoError(t, s.Add(1))
		assert.Equal(t, []int{2, 3, 1}, s.Items())
	})
}

func TestSet_Clear(t *testing.T) {
	s := New(1, 2, 3)
	s.Clear()
	assert.True(t, s.Empty())
	assert.False(t, s.Contains(1))
	require.NoError(t, s.Add(2))
	assert.Equal(t, []int{2}, s.Items())
}

func TestSet_All(t *testing.T) {
	s := New("a", "b", "c")

	var got []string
	for item := range s.All() {
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	t.Run("restartable", func(t *testing.T) {
		seq := s.All()
		var first, second []string
		for item := range seq {
			first = append(first, item)
		}
		for item := range seq {
			second = append(second, item)
		}
		assert.Equal(t, first, second)
	})

	t.Run("early stop", func(t *testing.T) {
		var got []string
		for item := range s.All() {
			got = append(got, item)
			if item == "b" {
				break
			}
		}
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("empty", func(t *testing.T) {
		for range New[int]().All() {
			t.Fatal("empty set yielded an element")
		}
	})
}

func TestSet_Copies(t *testing.T) {
	s := New(1, 2, 3)

	items := s.Items()
	items[0] = 100
	assert.Equal(t, []int{1, 2, 3}, s.Items())

	c := s.Clone()
	require.NoError(t, c.Add(4))
	require.NoError(t, c.Remove(1))
	assert.Equal(t, []int{1, 2, 3}, s.Items())
	assert.Equal(t, []int{2, 3, 4}, c.Items())
}

func TestSet_String(t *testing.T) {
	assert.Equal(t, "{}", New[int]().String())
	assert.Equal(t, "{1 2 3}", New(1, 2, 3).String())
	assert.Equal(t, "{a b}", fmt.Sprint(New("a", "b")))
}

func TestIsAbsent(t *testing.T) {
	var m map[string]int
	var fn func()
	var st fmt.Stringer

	assert.True(t, isAbsent[*int](nil))
	assert.True(t, isAbsent(st))
	assert.True(t, isAbsent[any](m))
	assert.True(t, isAbsent[any](fn))
	assert.False(t, isAbsent[any](map[string]int{}))
	assert.False(t, isAbsent(0))
	assert.False(t, isAbsent(""))
	assert.False(t, isAbsent(struct{ a int }{}))
	assert.False(t, isAbsent(uuid.Nil))
}

func TestCheckElement(t *testing.T) {
	assert.NoError(t, checkElement[any](1))
	assert.NoError(t, checkElement[any]([2]int{}))
	assert.True(t, errors.Is(checkElement[any](nil), ErrInvalidArgument))
	assert.True(t, errors.Is(checkElement[any]([]int{}), ErrInvalidArgument))
	assert.True(t, errors.Is(checkElement[any](func() {}), ErrInvalidArgument))
	assert.True(t, errors.Is(checkElement[any]([1][]int{}), ErrInvalidArgument))
}
