package tableset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Engine compiles a markup document string into a PDF binary.
//
// The two built-in implementations are [LaTeXEngine] (pdflatex) and
// [ChromeEngine] (headless Chrome over HTML). Custom implementations
// return their output via [NewResult].
type Engine interface {
	Compile(ctx context.Context, source string) (*Result, error)
}

// compileLogTail bounds how much compiler output a [CompileError] carries.
const compileLogTail = 25

// LaTeXEngine compiles LaTeX source to PDF by shelling out to pdflatex
// (or a compatible driver, see [WithCommand]). Each compilation runs in
// its own temporary build directory, which is removed afterwards.
//
// The engine holds no resources between compilations and is safe for
// concurrent use.
type LaTeXEngine struct {
	cfg engineConfig
}

// NewLaTeXEngine creates a LaTeXEngine with the given options. The
// compiler binary is not resolved until the first Compile call.
func NewLaTeXEngine(opts ...EngineOption) *LaTeXEngine {
	cfg := defaultEngineConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &LaTeXEngine{cfg: cfg}
}

// Compile writes source to a temporary .tex file, runs the compiler over
// it, and returns the produced PDF. A compiler diagnostic surfaces as a
// [*CompileError]; a missing executable wraps [exec.ErrNotFound].
func (e *LaTeXEngine) Compile(ctx context.Context, source string) (*Result, error) {
	if e.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.timeout)
		defer cancel()
	}

	dir, err := os.MkdirTemp("", "tableset-*")
	if err != nil {
		return nil, fmt.Errorf("tableset: creating build directory: %w", err)
	}
	defer os.RemoveAll(dir)

	texPath := filepath.Join(dir, "table.tex")
	if err := os.WriteFile(texPath, []byte(source), 0o644); err != nil {
		return nil, fmt.Errorf("tableset: writing source file: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.cfg.command,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", dir,
		texPath,
	)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("tableset: %s not found in PATH: %w", e.cfg.command, err)
		}
		return nil, &CompileError{
			Command: e.cfg.command,
			Log:     tailLines(output.String(), compileLogTail),
			Err:     err,
		}
	}

	pdf, err := os.ReadFile(filepath.Join(dir, "table.pdf"))
	if err != nil {
		return nil, fmt.Errorf("tableset: reading compiler output: %w", err)
	}
	return NewResult(pdf), nil
}

// tailLines returns the last n lines of s.
func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
