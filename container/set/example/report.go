// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/wangtaoking1/setkit/container/set"
	"github.com/wangtaoking1/setkit/log"
)

type row struct {
	title string
	set   *set.Set[int]
}

type report struct {
	rows          []row
	thirdInFirst  bool
	thirdInSecond bool
}

func newReport(opts *Options) (*report, error) {
	first, err := set.FromSlice(opts.First)
	if err != nil {
		return nil, err
	}
	second, err := set.FromSlice(opts.Second)
	if err != nil {
		return nil, err
	}
	third, err := set.FromSlice(opts.Third)
	if err != nil {
		return nil, err
	}

	union, err := set.Union(first, second)
	if err != nil {
		return nil, err
	}
	difference, err := set.Difference(first, second)
	if err != nil {
		return nil, err
	}
	intersection, err := set.Intersection(first, second)
	if err != nil {
		return nil, err
	}
	symmetric, err := set.SymmetricDifference(first, second)
	if err != nil {
		return nil, err
	}
	log.Debugw("Set algebra computed",
		"union", union, "difference", difference,
		"intersection", intersection, "symmetricDifference", symmetric)

	r := &report{
		rows: []row{
			{"First set:", first},
			{"Second set:", second},
			{"Third set:", third},
			{"Combining the first and second set:", union},
			{"The difference between the first and second sets:", difference},
			{"Intersection of the first and second sets:", intersection},
			{"Symmetric difference between two sets:", symmetric},
		},
	}
	if r.thirdInFirst, err = set.Subset(third, first); err != nil {
		return nil, err
	}
	if r.thirdInSecond, err = set.Subset(third, second); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *report) write(w io.Writer) error {
	table := uitable.New()
	table.MaxColWidth = 120
	table.Wrap = true
	for _, row := range r.rows {
		table.AddRow(row.title, join(row.set))
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return err
	}

	if err := writeVerdict(w, r.thirdInFirst, "first"); err != nil {
		return err
	}
	return writeVerdict(w, r.thirdInSecond, "second")
}

func writeVerdict(w io.Writer, subset bool, of string) error {
	if subset {
		_, err := color.New(color.FgGreen).Fprintf(w, "The third set is a subset of the %s.\n", of)
		return err
	}
	_, err := color.New(color.FgYellow).Fprintf(w, "The third set is not a subset of the %s.\n", of)
	return err
}

// join renders the elements of s separated by single spaces.
func join(s *set.Set[int]) string {
	elems := make([]string, 0, s.Len())
	for item := range s.All() {
		elems = append(elems, strconv.Itoa(item))
	}

	return strings.Join(elems, " ")
}
