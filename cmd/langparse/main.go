// Command langparse is the reference CLI for the parser: it reads the
// source files named on the command line (it does not read stdin), parses
// each with parser.Parse, and reports diagnostics or, with -print, the
// round-tripped source.
//
// Flag-based configuration and the red-error-to-stderr convention are
// grounded in the teacher's cmd/risor/main.go; structured driver logging
// uses rs/zerolog the same way the teacher wires it into cmd/risor-lsp.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/langcore/parse/ast"
	"github.com/langcore/parse/diag"
	"github.com/langcore/parse/parser"
	"github.com/langcore/parse/printer"
)

var log zerolog.Logger

func main() {
	var noColor, verbose, jsonLog, showTiming, printTree, watch bool
	var maxDepth, diagLimit int
	flag.BoolVar(&noColor, "no-color", false, "disable color diagnostic output")
	flag.BoolVar(&verbose, "verbose", false, "log driver-level progress to stderr")
	flag.BoolVar(&jsonLog, "json-log", false, "emit driver logs as JSON instead of console text")
	flag.BoolVar(&showTiming, "timing", false, "print parse duration for each file")
	flag.BoolVar(&printTree, "print", false, "print the reconstructed source instead of diagnostics")
	flag.BoolVar(&watch, "watch", false, "re-parse the given file on keypress until 'q' is pressed")
	flag.IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum expression recursion depth")
	flag.IntVar(&diagLimit, "max-diagnostics", parser.DefaultDiagnosticsLimit, "maximum diagnostics recorded per file")
	flag.Parse()

	if noColor {
		color.NoColor = true
	}
	log = newLogger(verbose, jsonLog)

	paths := flag.Args()
	if watch {
		if len(paths) != 1 {
			fmt.Fprintln(os.Stderr, "error: -watch requires exactly one file argument")
			os.Exit(1)
		}
		runWatch(paths[0], maxDepth, diagLimit)
		return
	}

	opts := func(filename, sessionID string) []parser.Option {
		return []parser.Option{
			parser.WithFilename(filename),
			parser.WithMaxDepth(maxDepth),
			parser.WithDiagnosticsLimit(diagLimit),
			parser.WithSessionID(sessionID),
		}
	}

	var readErrs *multierror.Error
	failed := false
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			readErrs = multierror.Append(readErrs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		sessionID := uuid.Must(uuid.NewV4()).String()
		start := time.Now()
		tree := parser.Parse(source, opts(path, sessionID)...)
		elapsed := time.Since(start)
		log.Debug().Str("file", path).Str("session_id", sessionID).Dur("elapsed", elapsed).Int("errors", len(tree.Errors)).Msg("parsed file")

		if printTree {
			fmt.Println(printer.Print(tree))
		} else if len(tree.Errors) > 0 {
			failed = true
			reportDiagnostics(tree, path, !noColor)
		}
		if showTiming {
			fmt.Fprintf(os.Stderr, "%s: %.03fs\n", path, elapsed.Seconds())
		}
	}

	if readErrs.ErrorOrNil() != nil {
		fmt.Fprintln(os.Stderr, readErrs)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

func newLogger(verbose, jsonLog bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	if jsonLog {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func reportDiagnostics(tree *ast.Tree, filename string, useColor bool) {
	f := diag.NewFormatter(useColor)
	formatted := make([]*diag.FormattedError, 0, len(tree.Errors))
	for _, d := range tree.Errors {
		formatted = append(formatted, diag.NewFormattedError(d, tree.Source, tree.Tokens, filename))
	}
	fmt.Fprint(os.Stderr, f.FormatMultiple(formatted))
}
