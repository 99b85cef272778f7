package hal

import (
	"io"
	"os"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	// Scale is the integer zoom applied to the framebuffer (default 2).
	Scale int
	// Hz is the update rate (default 60).
	Hz int
	// Log receives log lines (default stdout).
	Log io.Writer
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	return c
}

func (c WindowConfig) logOutput() io.Writer {
	if c.Log == nil {
		return os.Stdout
	}
	return c.Log
}
