// Command dfagen compiles an automaton definition to Go source.
//
// The generated file holds a table-driven Match function plus, for each
// -input flag, a boolean constant carrying the verdict computed at
// generation time. Inputs fixed before the build therefore cost nothing
// at run time, while the matcher stays available for inputs that are
// not.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/comalice/dfax"
	"github.com/comalice/dfax/internal/codegen"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return fmt.Sprint(*l) }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -config FILE [-o FILE] [-package NAME] [-name IDENT] [-input STRING]...\n", os.Args[0])
		flag.PrintDefaults()
	}
	configPtr := flag.String("config", "", "path to automaton definition (YAML or JSON)")
	outPtr := flag.String("o", "", "output file (default stdout)")
	packagePtr := flag.String("package", "main", "package name for the generated file")
	namePtr := flag.String("name", "", "identifier stem for generated declarations (default: derived from the definition ID)")
	verbosePtr := flag.Bool("verbose", false, "enable debug logging")
	var inputs stringList
	flag.Var(&inputs, "input", "input to evaluate at generation time (repeatable)")
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
		os.Exit(1)
	}
	a, err := cfg.Compile()
	if err != nil {
		logger.Error("failed to compile automaton", "err", err)
		os.Exit(1)
	}

	name := *namePtr
	if name == "" {
		name = codegen.Identifier(cfg.ID)
		if name == "" {
			logger.Error("cannot derive an identifier from the definition ID; pass -name", "id", cfg.ID)
			os.Exit(1)
		}
	}

	src, err := codegen.Generate(a, codegen.Options{
		Package: *packagePtr,
		Name:    name,
		Inputs:  inputs,
		Source:  fmt.Sprintf("%s (%s)", cfg.ID, cfg.Fingerprint()),
	})
	if err != nil {
		logger.Error("code generation failed", "err", err)
		os.Exit(1)
	}

	for i, input := range inputs {
		logger.Debug("verdict baked in",
			"const", fmt.Sprintf("Match%s%d", name, i),
			"input", input,
			"accept", a.Match(input),
		)
	}

	if *outPtr == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			logger.Error("failed to write output", "err", err)
			os.Exit(1)
		}
	} else {
		if err := os.WriteFile(*outPtr, src, 0o644); err != nil {
			logger.Error("failed to write output", "err", err, "path", *outPtr)
			os.Exit(1)
		}
	}
	logger.Info("generated",
		"id", cfg.ID,
		"fingerprint", cfg.Fingerprint(),
		"name", name,
		"states", a.NumStates(),
		"inputs", len(inputs),
	)
}
