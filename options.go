package tableset

import "time"

// engineConfig holds internal configuration shared by the PDF engines.
type engineConfig struct {
	command      string // LaTeX compiler executable
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
	headless     string
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		command:  "pdflatex",
		timeout:  30 * time.Second,
		headless: "new",
	}
}

// EngineOption configures a [LaTeXEngine] or [ChromeEngine].
type EngineOption func(*engineConfig)

// WithCommand sets the LaTeX compiler executable invoked by
// [LaTeXEngine]. Defaults to "pdflatex" resolved from PATH. Any
// pdflatex-compatible driver (xelatex, lualatex) works.
func WithCommand(path string) EngineOption {
	return func(c *engineConfig) {
		c.command = path
	}
}

// WithChromePath sets the path to the Chrome or Chromium executable used
// by [ChromeEngine]. By default standard locations are searched.
func WithChromePath(path string) EngineOption {
	return func(c *engineConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single compilation.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) EngineOption {
	return func(c *engineConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() EngineOption {
	return func(c *engineConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload lets [NewChromeEngine] download a compatible Chromium
// binary when none is found locally.
func WithAutoDownload() EngineOption {
	return func(c *engineConfig) {
		c.autoDownload = true
	}
}
