// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/wangtaoking1/setkit/flag"
)

// Options holds the elements of the three demo sets.
type Options struct {
	First  []int `json:"first" mapstructure:"first"`
	Second []int `json:"second" mapstructure:"second"`
	Third  []int `json:"third" mapstructure:"third"`
}

func newOptions() *Options {
	return &Options{
		First:  []int{1, 2, 3, 4, 5},
		Second: []int{4, 5, 6, 7, 8},
		Third:  []int{3, 4, 5},
	}
}

func (o *Options) Flags() (fss flag.NamedFlagSets) {
	fs := fss.FlagSet("sets")
	fs.IntSliceVar(&o.First, "first", o.First, "Elements of the first set.")
	fs.IntSliceVar(&o.Second, "second", o.Second, "Elements of the second set.")
	fs.IntSliceVar(&o.Third, "third", o.Third, "Elements of the third set.")

	return fss
}

// Validate accepts any elements, duplicates are dropped when the sets are built.
func (o *Options) Validate() []error {
	return nil
}

func (o *Options) String() string {
	return fmt.Sprintf("first=%v second=%v third=%v", o.First, o.Second, o.Third)
}
