package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rlib-dev/rlib-go/pkg/rlib"
	"github.com/rlib-dev/rlib-go/pkg/rlib/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rlib-go", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backendName := fs.String("backend", "", "engine to use: builtin or native (default from $RLIB_BACKEND)")
	libPath := fs.String("lib-path", "", "directories to search for the native library, before the defaults")
	verbose := fs.Bool("v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	cfg, err := rlib.ConfigFromEnv()
	if err != nil {
		zl.Error().Err(err).Msg("invalid environment")
		return 2
	}
	if *backendName != "" {
		if cfg.Backend, err = rlib.ParseBackend(*backendName); err != nil {
			zl.Error().Err(err).Msg("invalid -backend")
			return 2
		}
	}
	if *libPath != "" {
		cfg.SearchPaths = append(filepath.SplitList(*libPath), rlib.DefaultSearchPaths()...)
	}
	cfg.Logger = logging.NewZerolog(zl)

	zl.Debug().Str("version", rlib.WrapperVersion()).Msg("rlib-go starting")

	lib, err := rlib.Open(cfg)
	if err != nil {
		if errors.Is(err, rlib.ErrNotBuilt) || errors.Is(err, rlib.ErrLibraryNotFound) {
			fmt.Fprintf(stderr, "library unavailable: %v\n", err)
			return 1
		}
		zl.Error().Err(err).Msg("unexpected failure opening library")
		return 1
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			zl.Warn().Err(cerr).Msg("close error")
		}
	}()

	if err := demo(lib, stdout); err != nil {
		zl.Error().Err(err).Msg("demo failed")
		return 1
	}
	return 0
}

func demo(lib *rlib.Library, w io.Writer) error {
	fmt.Fprintln(w, "rlib Go Example")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "10 + 5 = %d\n", lib.Add(10, 5))
	fmt.Fprintf(w, "10 * 5 = %d\n", lib.Multiply(10, 5))

	power, err := lib.Exponent(2, 8)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "2 ^ 8 = %d\n", power)

	quotient, err := lib.Divide(10, 5)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "10 / 5 = %d\n", quotient)

	if _, err := lib.Divide(10, 0); err != nil {
		fmt.Fprintf(w, "10 / 0 error: %v\n", err)
	}
	return nil
}
