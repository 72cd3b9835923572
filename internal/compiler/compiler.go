package compiler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/chachacollins/pseudo/internal/checker"
	"github.com/chachacollins/pseudo/internal/codegen"
	"github.com/chachacollins/pseudo/internal/diagnostic"
	"github.com/chachacollins/pseudo/internal/ir"
	"github.com/chachacollins/pseudo/internal/parser"
)

// Result holds the output of a compilation
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	CSource     string
}

// Compile runs the full pipeline: parse -> check -> lower -> codegen.
// A syntax error is returned directly (fail-fast, one error). A missing
// main function is returned as checker.ErrMainNotFound. Semantic errors
// are batched in Result.Diagnostics with CSource left empty.
func Compile(filename, source string) (*Result, error) {
	res := &Result{}

	prog, err := parser.Parse(filename, source)
	if err != nil {
		return nil, err
	}

	checkResult, err := checker.Analyze(prog)
	if checkResult != nil {
		res.Diagnostics = checkResult.Diagnostics
	}
	if err != nil {
		return res, err
	}
	if res.Diagnostics.HasErrors() {
		return res, nil
	}

	stmts := ir.Lower(prog, checkResult)
	res.CSource = codegen.Generate(stmts)

	return res, nil
}

// Check runs parse + semantic analysis only (no codegen).
func Check(filename, source string) (*diagnostic.Diagnostics, error) {
	prog, err := parser.Parse(filename, source)
	if err != nil {
		return nil, err
	}

	res, err := checker.Analyze(prog)
	if res == nil {
		return nil, err
	}
	return res.Diagnostics, err
}

// EmitC runs the full pipeline and writes the C source to outPath.
func EmitC(filename, source, outPath string) error {
	res, err := Compile(filename, source)
	if err != nil {
		return err
	}
	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("compilation errors:\n%s", res.Diagnostics.Format())
	}

	return os.WriteFile(outPath, []byte(res.CSource), 0644)
}

// BuildOptions control native compilation of the generated C.
type BuildOptions struct {
	// Output is the native binary path. The intermediate C file is
	// written next to it as Output + ".c".
	Output string
	// Optimize passes -O3 to the native compiler.
	Optimize bool
	// KeepC retains the intermediate C file after a successful build.
	KeepC bool
}

// Build runs the full pipeline and produces a native binary by handing
// the generated C to the system C compiler. The compiler's exit status
// gates success.
func Build(filename, source string, opts BuildOptions) error {
	res, err := Compile(filename, source)
	if err != nil {
		return err
	}
	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("compilation errors:\n%s", res.Diagnostics.Format())
	}

	outDir := filepath.Dir(opts.Output)
	if outDir != "." && outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	cPath := opts.Output + ".c"
	if err := os.WriteFile(cPath, []byte(res.CSource), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cPath, err)
	}

	args := []string{}
	if opts.Optimize {
		args = append(args, "-O3")
	}
	args = append(args, cPath, "-o", opts.Output)

	cmd := exec.Command("cc", args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cc failed: %w", err)
	}

	if !opts.KeepC {
		if err := os.Remove(cPath); err != nil {
			return fmt.Errorf("failed to remove %s: %w", cPath, err)
		}
	}

	return nil
}
