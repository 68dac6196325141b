// This file is part of monty - https://github.com/ayoubhayoune/monty
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ayoubhayoune/monty/asm"
	"github.com/ayoubhayoune/monty/vm"
	"github.com/rs/zerolog"
)

type flags struct {
	config   string
	trace    bool
	debug    bool
	dump     bool
	list     bool
	queue    bool
	maxDepth int
}

func newFlagSet(f *flags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("monty", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "load settings from TOML file `filename`")
	fs.BoolVar(&f.trace, "trace", false, "trace executed instructions on stderr")
	fs.BoolVar(&f.debug, "debug", false, "enable debug diagnostics")
	fs.BoolVar(&f.dump, "dump", false, "dump the stack upon normal exit")
	fs.BoolVar(&f.list, "list", false, "print the parsed program and exit without running it")
	fs.BoolVar(&f.queue, "queue", false, "start in queue mode")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "maximum stack depth, 0 for unlimited")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: monty [options] file\n\nOptions:\n")
		fs.PrintDefaults()
	}
	return fs
}

// settings merges the config file, if any, with flags explicitly set on the
// command line.
func settings(fs *flag.FlagSet, f *flags) (*config, error) {
	cfg := defaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = loadConfig(f.config); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "trace":
			cfg.Trace = f.trace
		case "debug":
			cfg.Debug = f.debug
		case "dump":
			cfg.Dump = f.dump
		case "queue":
			if f.queue {
				cfg.Mode = vm.QueueMode.String()
			} else {
				cfg.Mode = vm.StackMode.String()
			}
		case "max-depth":
			cfg.MaxDepth = f.maxDepth
		}
	})
	return cfg, nil
}

func newLogger(cfg *config, stderr io.Writer) zerolog.Logger {
	if !cfg.Trace {
		return zerolog.Nop()
	}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	w := zerolog.ConsoleWriter{Out: stderr, NoColor: !isTerminal(stderr)}
	return zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger()
}

// atExit reports err, if any, and returns the process exit code.
func atExit(err error, debug bool, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if debug {
		fmt.Fprintf(stderr, "%+v\n", err)
	} else {
		fmt.Fprintln(stderr, err)
	}
	return vm.ExitCode(err)
}

func list(name string, r io.Reader, w io.Writer) error {
	p, err := asm.Parse(name, r)
	if err != nil {
		return err
	}
	return p.Disassemble(w)
}

func run(args []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return atExit(vm.UsageError(), false, stderr)
	}
	if fs.NArg() != 1 {
		return atExit(vm.UsageError(), false, stderr)
	}
	cfg, err := settings(fs, &f)
	if err != nil {
		return atExit(err, f.debug, stderr)
	}
	opts, err := cfg.options()
	if err != nil {
		return atExit(err, cfg.Debug, stderr)
	}

	name := fs.Arg(0)
	src, err := os.Open(name)
	if err != nil {
		return atExit(vm.FileOpenError(name, err), cfg.Debug, stderr)
	}
	defer src.Close()

	out := stdout
	if !isTerminal(stdout) {
		out = bufio.NewWriter(stdout)
	}

	if f.list {
		err = list(name, src, out)
		if bw, ok := out.(*bufio.Writer); ok && err == nil {
			err = bw.Flush()
		}
		return atExit(err, cfg.Debug, stderr)
	}

	opts = append(opts, vm.Output(out), vm.Logger(newLogger(cfg, stderr)))
	i, err := vm.New(opts...)
	if err != nil {
		return atExit(err, cfg.Debug, stderr)
	}

	err = i.Run(asm.NewScanner(name, src))
	if err == nil && cfg.Dump {
		err = i.Dump(out)
	}
	// release the stack and flush output before reporting
	if serr := i.Shutdown(); err == nil {
		err = serr
	}
	return atExit(err, cfg.Debug, stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
