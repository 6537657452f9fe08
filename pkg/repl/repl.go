// Package repl runs the line-oriented read-eval-print loop around pkg/calc.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/alecthomas/repr"

	"gocalc/pkg/calc"
	"gocalc/pkg/history"
)

// Config controls a Run session.
type Config struct {
	Prompt  string // written before each read; empty disables it
	Options calc.Options
	Trace   bool             // print the token stream and postfix form of each line
	Journal *history.Journal // optional; every evaluated line is recorded
}

// Run reads one expression per line from in and writes each result, or
// "error: ..." for a failing line, to out. It returns when in is exhausted.
// Blank lines are skipped.
func Run(in io.Reader, out io.Writer, cfg Config) error {
	sc := bufio.NewScanner(in)
	for {
		if cfg.Prompt != "" {
			fmt.Fprint(out, cfg.Prompt)
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		v, err := EvalLine(line, out, cfg)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		} else {
			fmt.Fprintln(out, v)
		}

		if cfg.Journal != nil {
			if jerr := cfg.Journal.Record(line, v, err); jerr != nil {
				fmt.Fprintf(out, "history: %v\n", jerr)
			}
		}
	}
	return sc.Err()
}

// EvalLine evaluates one line. With cfg.Trace set, the token stream and the
// postfix form are written to trace before the value is computed.
func EvalLine(line string, trace io.Writer, cfg Config) (*big.Int, error) {
	tokens, err := calc.Tokenize(line, cfg.Options)
	if err != nil {
		return nil, err
	}
	postfix, err := calc.ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	if cfg.Trace {
		fmt.Fprintf(trace, "tokens:  %s\n", repr.String(traceView(tokens), repr.Indent(""), repr.OmitEmpty(true)))
		fmt.Fprintf(trace, "postfix: %s\n", calc.FormatTokens(postfix))
	}
	return calc.EvalPostfix(postfix)
}

// traceToken is the dumped form of a token. Numbers are shown by lexeme
// rather than as big.Int internals.
type traceToken struct {
	Type   string
	Lexeme string
	Pos    int
}

func traceView(tokens []calc.Token) []traceToken {
	out := make([]traceToken, len(tokens))
	for i, tok := range tokens {
		out[i] = traceToken{Type: tok.Type.String(), Lexeme: tok.Lexeme, Pos: tok.Pos}
	}
	return out
}
