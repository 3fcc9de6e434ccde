// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/wangtaoking1/setkit/app"
	"github.com/wangtaoking1/setkit/container/set"
	"github.com/wangtaoking1/setkit/errors"
	"github.com/wangtaoking1/setkit/flag"
	"github.com/wangtaoking1/setkit/log"
)

type setOp func(a, b *set.Set[int]) (*set.Set[int], error)

type predicate func(a, b *set.Set[int]) (bool, error)

var (
	setOps = map[string]setOp{
		"union":                set.Union[int],
		"intersection":         set.Intersection[int],
		"difference":           set.Difference[int],
		"symmetric-difference": set.SymmetricDifference[int],
	}
	predicates = map[string]predicate{
		"subset": set.Subset[int],
		"equal":  set.Equal[int],
	}
)

type calcOptions struct {
	Op    string
	Left  string
	Right string

	left  []int
	right []int
}

func (o *calcOptions) Flags() (fss flag.NamedFlagSets) {
	fs := fss.FlagSet("calc")
	fs.StringVar(&o.Op, "op", o.Op, fmt.Sprintf("Operation to evaluate, one of %s.", strings.Join(opNames(), ", ")))
	fs.StringVar(&o.Left, "left", o.Left, "Left operand as a JSON array of integers.")
	fs.StringVar(&o.Right, "right", o.Right, "Right operand as a JSON array of integers.")

	return fss
}

// Validate checks the operation name and decodes both operands.
func (o *calcOptions) Validate() []error {
	var errs []error
	if _, ok := setOps[o.Op]; !ok {
		if _, ok := predicates[o.Op]; !ok {
			errs = append(errs, errors.Errorf("unknown operation %q", o.Op))
		}
	}

	var err error
	if o.left, err = parseIntArray(o.Left); err != nil {
		errs = append(errs, errors.WithMessage(err, "--left"))
	}
	if o.right, err = parseIntArray(o.Right); err != nil {
		errs = append(errs, errors.WithMessage(err, "--right"))
	}

	return errs
}

func calcCommand(out io.Writer) app.Command {
	opts := &calcOptions{Op: "union", Left: "[]", Right: "[]"}

	return app.NewCommand("calc",
		"evaluate one set operation",
		app.WithCmdDescription("Evaluate a single set operation on two integer sets given as JSON arrays, "+
			`e.g. calc --op intersection --left "[1,2,3]" --right "[2,3,4]".`),
		app.WithCmdOptions(opts),
		app.WithCmdRunFunc(func(name string) error {
			return calc(log.WithContext(context.Background(), "command", name, "op", opts.Op), out, opts)
		}),
	)
}

func calc(ctx context.Context, out io.Writer, opts *calcOptions) error {
	left, err := set.FromSlice(opts.left)
	if err != nil {
		return err
	}
	right, err := set.FromSlice(opts.right)
	if err != nil {
		return err
	}
	log.From(ctx).Debugw("Operands decoded", "left", left, "right", right)

	if op, ok := setOps[opts.Op]; ok {
		result, err := op(left, right)
		if err != nil {
			return err
		}
		log.From(ctx).Debugw("Operation evaluated", "result", result, "count", result.Count())
		_, err = fmt.Fprintf(out, "%s: %s\n", opts.Op, join(result))
		return err
	}

	ok, err := predicates[opts.Op](left, right)
	if err != nil {
		return err
	}
	log.From(ctx).Debugw("Predicate evaluated", "result", ok)
	_, err = fmt.Fprintf(out, "%s: %t\n", opts.Op, ok)
	return err
}

// parseIntArray decodes a JSON array of integers such as "[1, 2, 3]".
func parseIntArray(s string) ([]int, error) {
	data := bytes.TrimSpace([]byte(s))
	if len(data) == 0 || data[0] != '[' {
		return nil, errors.Errorf("%q is not a JSON array", s)
	}

	items := []int{}
	var elemErr error
	end, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, _ error) {
		if elemErr != nil {
			return
		}
		if dataType != jsonparser.Number {
			elemErr = errors.Errorf("element %q at offset %d is not a number", value, offset)
			return
		}
		n, err := jsonparser.ParseInt(value)
		if err != nil {
			elemErr = errors.Wrapf(err, "element %q at offset %d", value, offset)
			return
		}
		items = append(items, int(n))
	})
	if err != nil {
		return nil, errors.Wrapf(err, "decode %q", s)
	}
	if elemErr != nil {
		return nil, elemErr
	}
	// end is the offset of the closing bracket
	if end >= len(data) || len(bytes.TrimSpace(data[end+1:])) != 0 {
		return nil, errors.Errorf("%q has trailing data after the JSON array", s)
	}

	return items, nil
}

func opNames() []string {
	names := make([]string, 0, len(setOps)+len(predicates))
	for name := range setOps {
		names = append(names, name)
	}
	for name := range predicates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
