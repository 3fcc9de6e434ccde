// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// setctl prints the set algebra of three integer sets and evaluates single
// operations on sets given as JSON arrays.
package main

import (
	"io"
	"os"

	"github.com/wangtaoking1/setkit/app"
)

func main() {
	newApp(os.Stdout).Run()
}

func newApp(out io.Writer) app.App {
	options := newOptions()

	return app.NewApp("setctl",
		"set algebra demo",
		app.WithDescription("setctl builds three integer sets and prints their union, difference, "+
			"intersection, symmetric difference and subset relations."),
		app.WithOptions(options),
		app.WithSilence(),
		app.WithDefaultValidArgs(),
		app.WithCommands(calcCommand(out)),
		app.WithRunFunc(run(out, options)),
	)
}

func run(out io.Writer, opts *Options) app.RunFunc {
	return func(name string) error {
		r, err := newReport(opts)
		if err != nil {
			return err
		}

		return r.write(out)
	}
}
