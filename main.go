//go:build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gocalc/pkg/calc"
	"gocalc/pkg/utils"
)

// errBatchFailed reports that at least one line failed; the per-line errors
// have already been written.
var errBatchFailed = errors.New("one or more expressions failed")

func main() {
	expr := flag.String("e", "", "evaluate a single expression and exit")
	inPath := flag.String("in", "", "file of expressions to evaluate, one per line")
	lenient := flag.Bool("lenient", false, "ignore characters outside the expression alphabet")
	flag.Parse()

	if *expr != "" && *inPath != "" {
		fmt.Fprintln(os.Stderr, "use either -e or -in, not both")
		os.Exit(2)
	}

	opts := calc.Options{IgnoreUnknown: *lenient}

	switch {
	case *expr != "":
		v, err := calc.EvaluateOptions(*expr, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(v)
	case *inPath != "":
		fullPath, _, err := utils.GetPathInfo(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad input path %q: %v\n", *inPath, err)
			os.Exit(1)
		}
		lines, err := utils.ReadLines(fullPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
			os.Exit(1)
		}
		if err := runBatch(lines, os.Stdout, os.Stderr, opts); err != nil {
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "nothing to do: provide -e <expression> or -in <file>")
		flag.Usage()
		os.Exit(2)
	}
}

// runBatch evaluates every non-blank line, writing results to out and
// line-numbered errors to errOut. Evaluation continues past failures.
func runBatch(lines []string, out, errOut io.Writer, opts calc.Options) error {
	failed := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := calc.EvaluateOptions(line, opts)
		if err != nil {
			fmt.Fprintf(errOut, "line %d: %v\n", i+1, err)
			failed++
			continue
		}
		fmt.Fprintln(out, v)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errBatchFailed, failed, len(lines))
	}
	return nil
}
