// Command shape-lex prints the tokens of a source file, one per line.
//
// Usage:
//
//	shape-lex [--debug] [--on-error abort|warn|skip] [--string-spaces] [--ast] <file>
//
// Diagnostics go to stderr. The exit status is 1 if any diagnostic was
// reported, 2 on bad usage.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-lex/pkg/lex"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("shape-lex", flag.ContinueOnError)
	flags.SetOutput(stderr)
	debug := flags.Bool("debug", false, "trace each token and symbol table size to stderr")
	onError := flags.String("on-error", "abort", "diagnostic handling: abort, warn or skip")
	stringSpaces := flags.Bool("string-spaces", false, "allow spaces and tabs inside string literals")
	asAST := flags.Bool("ast", false, "print tokens as JSON rows built from the Shape AST")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: shape-lex [flags] <file>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	mode, err := lex.ParseErrorMode(*onError)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	opts := lex.DefaultOptions()
	opts.OnError = mode
	opts.AllowStringSpaces = *stringSpaces
	if mode == lex.ErrorModeWarn {
		opts.WarningCallback = func(line int, message string) {
			fmt.Fprintf(stderr, "warning: line %d: %s\n", line, message)
		}
	}

	path := flags.Arg(0)
	scanner, err := lex.Open(path, opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer scanner.Close()

	var tokens []lex.Token
	for scanner.Scan() {
		tok := scanner.Token()
		if *debug {
			fmt.Fprintf(stderr, "debug: %v\n", tok)
		}
		tokens = append(tokens, tok)
	}
	if *debug {
		fmt.Fprintf(stderr, "debug: %d tokens, %d symbols\n", len(tokens), scanner.Symbols().Len())
	}

	if *asAST {
		if err := writeAST(stdout, lex.ToAST(tokens)); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	} else if err := lex.RenderTo(stdout, tokens); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(scanner.Diagnostics()) > 0 {
		return 1
	}
	return 0
}

// writeAST encodes each token row of node as a JSON array on its own line.
func writeAST(w io.Writer, node *ast.ArrayDataNode) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, elem := range node.Elements() {
		row, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return fmt.Errorf("row %d: unexpected node %T", i, elem)
		}
		values := make([]interface{}, 0, row.Len())
		for _, field := range row.Elements() {
			lit, ok := field.(*ast.LiteralNode)
			if !ok {
				return fmt.Errorf("row %d: unexpected field %T", i, field)
			}
			values = append(values, lit.Value())
		}
		if err := enc.Encode(values); err != nil {
			return err
		}
	}
	return nil
}
