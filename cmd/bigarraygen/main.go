// Command bigarraygen writes a union constraint over Go array lengths.
//
//	bigarraygen -pkg mypkg -name Arrays -out arrays_gen.go          # default lengths
//	bigarraygen -pkg mypkg -name Arrays -out arrays_gen.go 42 300    # only 42 and 300
//	bigarraygen -pkg mypkg -name Arrays -out arrays_gen.go +127      # defaults plus 127
//	bigarraygen -config bigarray.toml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rawbytedev/bigarray/internal/gen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "bigarraygen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bigarraygen", flag.ContinueOnError)
	configPath := fs.String("config", "", "generator config file (.toml, .yaml)")
	pkg := fs.String("pkg", "", "package name of the generated file")
	name := fs.String("name", "", "name of the generated constraint")
	out := fs.String("out", "", "output path")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := gen.DefaultConfig()
	if *configPath != "" {
		cfg, err = gen.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded config", zap.String("path", *configPath))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["pkg"] {
		cfg.Package = *pkg
	}
	if set["name"] {
		cfg.Name = *name
	}
	if set["out"] {
		cfg.Output = *out
	}
	if fs.NArg() > 0 {
		lengths, extend, err := gen.ParseLengths(fs.Args())
		if err != nil {
			return err
		}
		cfg.Lengths, cfg.Extend = lengths, extend
	}

	lengths, err := cfg.Resolved()
	if err != nil {
		return err
	}
	logger.Debug("resolved lengths", zap.Ints("lengths", lengths), zap.Bool("extend", cfg.Extend))

	if err := gen.Write(cfg); err != nil {
		return err
	}
	logger.Info("wrote constraint",
		zap.String("package", cfg.Package),
		zap.String("name", cfg.Name),
		zap.Int("lengths", len(lengths)),
		zap.String("output", cfg.Output))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}
