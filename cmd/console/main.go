package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gocalc/pkg/history"
	"gocalc/pkg/repl"
)

const syncInterval = 3 * time.Second

func main() {
	lenient := flag.Bool("lenient", false, "ignore characters outside the expression alphabet instead of rejecting the line")
	trace := flag.Bool("trace", false, "print the token stream and postfix form before each result")
	historyPath := flag.String("history", "", "file to load the session history from and persist it to")
	prompt := flag.String("prompt", "> ", "prompt written before each line")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *lenient, *trace, *historyPath, *prompt); err != nil {
		log.Fatalf("console: %v", err)
	}
}

func run(in io.Reader, out io.Writer, lenient, trace bool, historyPath, prompt string) error {
	cfg := repl.Config{Prompt: prompt, Trace: trace}
	cfg.Options.IgnoreUnknown = lenient

	if historyPath == "" {
		return repl.Run(in, out, cfg)
	}

	journal := history.NewJournal()
	if err := journal.LoadFrom(historyPath); err != nil {
		return fmt.Errorf("load history %q: %w", historyPath, err)
	}
	cfg.Journal = journal

	// Flush the journal in the background while the session runs
	stop := make(chan struct{})
	go journal.StartSyncer(historyPath, syncInterval, stop)

	runErr := repl.Run(in, out, cfg)

	// Graceful shutdown: stop syncer and do a final flush
	close(stop)
	if err := journal.PersistTo(historyPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to persist history %q: %v\n", historyPath, err)
	}
	return runErr
}
