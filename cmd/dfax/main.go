// Command dfax matches inputs against an automaton definition.
//
// Inputs come from the command line, or from stdin one per line when no
// arguments are given. The exit code is 0 when every input was
// accepted, 1 when any input was rejected, and 2 on usage or definition
// errors, so dfax composes in shell pipelines the way grep does.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/comalice/dfax"
)

// maxLineBytes caps a single stdin line, raised from bufio.Scanner's
// 64KiB default.
const maxLineBytes = 1 << 20

// readLines collects one input per line from r.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -config FILE [-start STATE] [-dot] [-quiet] [INPUT...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	configPtr := flag.String("config", "", "path to automaton definition (YAML or JSON)")
	startPtr := flag.String("start", "", "override the start state by name")
	dotPtr := flag.Bool("dot", false, "print the automaton as Graphviz DOT and exit")
	quietPtr := flag.Bool("quiet", false, "suppress per-input output; exit code only")
	verbosePtr := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbosePtr {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *configPtr == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := dfax.LoadConfigFile(*configPtr)
	if err != nil {
		logger.Error("failed to load definition", "err", err)
		os.Exit(2)
	}
	if *startPtr != "" {
		cfg.Start = *startPtr
	}
	a, err := cfg.Compile()
	if err != nil {
		logger.Error("failed to compile automaton", "err", err)
		os.Exit(2)
	}
	logger.Debug("automaton compiled", "id", cfg.ID, "states", a.NumStates(), "start", a.Start())

	if *dotPtr {
		fmt.Print(a.DOT(cfg.ID))
		return
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs, err = readLines(os.Stdin)
		if err != nil {
			logger.Error("failed to read stdin", "err", err)
			os.Exit(2)
		}
	}

	allAccepted := true
	for _, input := range inputs {
		ok := a.Match(input)
		logger.Debug("matched", "input", input, "accept", ok)
		if !ok {
			allAccepted = false
		}
		if !*quietPtr {
			if ok {
				fmt.Printf("accept\t%s\n", input)
			} else {
				fmt.Printf("reject\t%s\n", input)
			}
		}
	}
	if !allAccepted {
		os.Exit(1)
	}
}
