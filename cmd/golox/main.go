package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/karupanerura/golox/internal/scanner"
	"github.com/karupanerura/golox/internal/token"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitLexError = 65
)

type Option struct {
	Format string `long:"format" description:"[OPTIONAL] Token output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Args   struct {
		Script flags.Filename `positional-arg-name:"script"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return exitOK
		}
		parser.WriteHelp(os.Stderr)
		return exitUsage
	}
	if len(rest) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		return exitUsage
	}

	if opt.Args.Script != "" {
		return runFile(string(opt.Args.Script), opt.Format)
	}
	return runPrompt(opt.Format)
}

func runFile(filePath, format string) int {
	source, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("failed to read script: %v", err)
		return 1
	}

	res := scanner.Scan(string(source))
	if err := dumpTokens(os.Stdout, res.Tokens, format); err != nil {
		log.Printf("failed to dump tokens: %v", err)
		return 1
	}
	reportDiagnostics(res.Diagnostics)
	if res.HadError() {
		return exitLexError
	}
	return exitOK
}

func runPrompt(format string) int {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("golox REPL")
	}

	lines := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !lines.Scan() {
			break
		}

		// one scan per line; the error state lives in the per-scan result,
		// so a lexical error never ends the session
		res := scanner.Scan(lines.Text())
		if err := dumpTokens(os.Stdout, res.Tokens, format); err != nil {
			log.Printf("failed to dump tokens: %v", err)
			return 1
		}
		reportDiagnostics(res.Diagnostics)
	}
	if err := lines.Err(); err != nil {
		log.Printf("failed to read stdin: %v", err)
		return 1
	}
	return exitOK
}

func reportDiagnostics(diags []scanner.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
}

func dumpTokens(w io.Writer, tokens []token.Token, format string) error {
	switch format {
	case "json":
		return dumpJSON(w, tokens)
	case "yaml":
		b, err := yaml.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("yaml.Marshal: %w", err)
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
		return nil
	default:
		for _, line := range lo.Map(tokens, func(t token.Token, _ int) string { return t.String() }) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return err
	}
	return nil
}
