package main

import (
	"fmt"
	"os"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"

	"github.com/langcore/parse/parser"
)

// runWatch re-parses path every time a key is pressed, printing diagnostics
// after each pass, until 'q' or Ctrl+C is pressed. Grounded in the
// teacher's cmd/risor/repl.go keyboard-driven loop, generalized from a
// read-eval-print loop into a read-parse-report loop.
func runWatch(path string, maxDepth, diagLimit int) {
	reparse := func() {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			return
		}
		tree := parser.Parse(source,
			parser.WithFilename(path),
			parser.WithMaxDepth(maxDepth),
			parser.WithDiagnosticsLimit(diagLimit),
		)
		if len(tree.Errors) == 0 {
			fmt.Printf("%s: ok\n", path)
			return
		}
		reportDiagnostics(tree, path, !colorDisabled())
	}

	reparse()
	fmt.Println("watching for changes — press any key to re-parse, 'q' to quit")
	err := keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		if key.Code == keys.RuneKey && key.String() == "q" {
			return true, nil
		}
		if key.Code == keys.CtrlC {
			return true, nil
		}
		reparse()
		return false, nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func colorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}
