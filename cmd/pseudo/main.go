package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chachacollins/pseudo/internal/compiler"
)

const usage = `pseudo - a pseudo-language to C compiler

Usage:
  pseudo <file> [options]

Options:
  -o <output>    Name of the native binary (defaults to <file> without extension)
  --optimize     Pass -O3 to the C compiler
  --keep         Keep the intermediate .c file after a build
  --emit-c       Write the generated C source and skip the native build
  --check        Parse and type-check only
  -h, --help     Show this help

Examples:
  pseudo hello.pseudo              Build hello.pseudo -> hello
  pseudo hello.pseudo -o greet     Build with a custom binary name
  pseudo hello.pseudo --emit-c     Write hello.c without building
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var (
		filePath  string
		output    string
		optimize  bool
		keepC     bool
		emitC     bool
		checkOnly bool
	)

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-o":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -o requires an argument")
				os.Exit(1)
			}
			i++
			output = args[i]
		case "--optimize":
			optimize = true
		case "--keep":
			keepC = true
		case "--emit-c":
			emitC = true
		case "--check":
			checkOnly = true
		case "help", "--help", "-h":
			fmt.Print(usage)
			return
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				os.Exit(1)
			}
			if filePath != "" {
				fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n", arg)
				os.Exit(1)
			}
			filePath = arg
		}
	}

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	source, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}

	if output == "" {
		output = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	switch {
	case checkOnly:
		diag, err := compiler.Check(filePath, string(source))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			if diag != nil && diag.Count() > 0 {
				fmt.Fprintln(os.Stderr, diag.Format())
			}
			os.Exit(1)
		}
		if diag.HasErrors() {
			fmt.Fprintln(os.Stderr, diag.Format())
			os.Exit(1)
		}
		if diag.Count() > 0 {
			fmt.Println(diag.Format())
		}
		fmt.Println("No errors found.")

	case emitC:
		outPath := output + ".c"
		if err := compiler.EmitC(filePath, string(source), outPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", outPath)

	default:
		opts := compiler.BuildOptions{
			Output:   output,
			Optimize: optimize,
			KeepC:    keepC,
		}
		if err := compiler.Build(filePath, string(source), opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Built %s\n", output)
	}
}
