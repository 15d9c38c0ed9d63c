// Command genast generates syntax-tree node declarations. It is a build
// tool: its output is committed (internal/ast) and nothing invokes it at
// scan time.
package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/karupanerura/golox/internal/astgen"
)

type Option struct {
	Output  string `short:"o" long:"output" description:"[REQUIRED] Output directory" required:"true"`
	Spec    string `long:"spec" description:"[OPTIONAL] Node definitions (YAML); defaults to the built-in Expr set" required:"false"`
	Package string `long:"package" description:"[OPTIONAL] Package name of the generated file" default:"ast"`
	Base    string `long:"base" description:"[OPTIONAL] Name of the node interface" default:"Expr"`
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
			return 0
		}
		parser.WriteHelp(os.Stderr)
		return 64
	}
	if len(rest) != 0 {
		parser.WriteHelp(os.Stderr)
		return 64
	}

	nodes := astgen.DefaultExprNodes()
	if opt.Spec != "" {
		f, err := os.Open(opt.Spec)
		if err != nil {
			log.Printf("failed to open spec: %v", err)
			return 1
		}
		nodes, err = astgen.LoadSpec(f)
		f.Close()
		if err != nil {
			log.Printf("failed to load spec: %v", err)
			return 1
		}
	}

	path := filepath.Join(opt.Output, strings.ToLower(opt.Base)+".go")
	f, err := os.Create(path)
	if err != nil {
		log.Printf("failed to create %s: %v", path, err)
		return 1
	}
	defer f.Close()

	if err := astgen.Generate(f, opt.Package, opt.Base, nodes); err != nil {
		log.Printf("failed to generate %s: %v", path, err)
		return 1
	}
	return 0
}
