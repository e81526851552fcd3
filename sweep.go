package tableset

import (
	"context"
	"fmt"
	"path/filepath"
)

// Renderer assembles a complete markup document embedding the given table
// and title row. [LaTeXRenderer] and [HTMLRenderer] implement it.
type Renderer interface {
	Document(titles []string, data Table) string
}

// Default sweep ranges, inclusive.
const (
	DefaultRowMin    = 2
	DefaultRowMax    = 9
	DefaultColumnMin = 2
	DefaultColumnMax = 7

	// DefaultOutputDir is the dataset directory, relative to the working
	// directory.
	DefaultOutputDir = "tables"
)

// sweepConfig holds internal configuration for a Sweep.
type sweepConfig struct {
	dir            string
	rowMin, rowMax int
	colMin, colMax int
	engine         Engine
	render         Renderer
	text           TextSource
	manifest       bool
}

func defaultSweepConfig() sweepConfig {
	return sweepConfig{
		dir:      DefaultOutputDir,
		rowMin:   DefaultRowMin,
		rowMax:   DefaultRowMax,
		colMin:   DefaultColumnMin,
		colMax:   DefaultColumnMax,
		text:     Lorem(),
		manifest: true,
	}
}

// SweepOption configures a [Sweep].
type SweepOption func(*sweepConfig)

// WithOutputDir sets the dataset directory. Defaults to "tables".
func WithOutputDir(dir string) SweepOption {
	return func(c *sweepConfig) {
		c.dir = dir
	}
}

// WithRowRange sets the inclusive row-count range. Defaults to 2..9.
func WithRowRange(min, max int) SweepOption {
	return func(c *sweepConfig) {
		c.rowMin, c.rowMax = min, max
	}
}

// WithColumnRange sets the inclusive column-count range. Defaults to 2..7.
func WithColumnRange(min, max int) SweepOption {
	return func(c *sweepConfig) {
		c.colMin, c.colMax = min, max
	}
}

// WithEngine sets the compiler backend and the matching markup renderer.
// The default pair is [NewLaTeXEngine] and [LaTeXRenderer]; pass a
// [ChromeEngine] together with an [HTMLRenderer] to print through Chrome.
func WithEngine(e Engine, r Renderer) SweepOption {
	return func(c *sweepConfig) {
		c.engine = e
		c.render = r
	}
}

// WithTextSource sets the filler-text source used for sentence cells and
// surrounding paragraphs. Defaults to [Lorem].
func WithTextSource(src TextSource) SweepOption {
	return func(c *sweepConfig) {
		c.text = src
	}
}

// WithoutManifest disables writing manifest.json after the sweep.
func WithoutManifest() SweepOption {
	return func(c *sweepConfig) {
		c.manifest = false
	}
}

// Sweep drives the full dataset generation: for every combination of row
// count, column count and filling mode it generates table data, renders
// the markup document, compiles it to PDF and writes the artifact pair.
//
// Execution is fully sequential and fail-fast: the first error halts the
// sweep, and already-written pairs are left in place. Re-running is safe;
// pairs at the same paths are overwritten with freshly generated content.
type Sweep struct {
	cfg sweepConfig
}

// NewSweep creates a Sweep with the given options.
func NewSweep(opts ...SweepOption) *Sweep {
	cfg := defaultSweepConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Sweep{cfg: cfg}
}

// Run executes the sweep. Sentence-mode pairs are generated before
// timestamp-mode pairs for each size combination.
func (s *Sweep) Run(ctx context.Context) error {
	engine := s.cfg.engine
	render := s.cfg.render
	if engine == nil {
		engine = NewLaTeXEngine()
	}
	if render == nil {
		render = &LaTeXRenderer{Text: s.cfg.text}
	}

	var entries []ManifestEntry
	for rows := s.cfg.rowMin; rows <= s.cfg.rowMax; rows++ {
		for cols := s.cfg.colMin; cols <= s.cfg.colMax; cols++ {
			for _, mode := range []FillMode{FillSentences, FillTimestamps} {
				data := GenerateWithSource(rows, cols, mode, s.cfg.text)
				titles := Titles(cols)

				pdf, err := engine.Compile(ctx, render.Document(titles, data))
				if err != nil {
					return fmt.Errorf("tableset: compiling %dx%d %s table: %w", rows, cols, mode, err)
				}

				name := fmt.Sprintf("%d_%d_%s", rows, cols, mode.fileToken())
				base := filepath.Join(s.cfg.dir, name)
				if err := WriteArtifacts(base, pdf, titles, data); err != nil {
					return err
				}

				if s.cfg.manifest {
					entry, err := newManifestEntry(rows, cols, mode, name, base, pdf.Bytes())
					if err != nil {
						return err
					}
					entries = append(entries, entry)
				}
			}
		}
	}

	if s.cfg.manifest {
		return writeManifest(s.cfg.dir, engine, entries)
	}
	return nil
}
