package app

import (
	"calcpad/hal"
	"calcpad/internal/buildinfo"
	"calcpad/tasks/calc"
)

// Config selects optional behavior of the calculator app.
type Config struct {
	// Quiet suppresses the startup banner.
	Quiet bool
}

// New wires the calculator task to h and returns the per-frame step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	t := calc.New(h.Display(), h.Input(), h.Logger())
	if !cfg.Quiet && h.Logger() != nil {
		h.Logger().WriteLineString("calcpad " + buildinfo.Short())
	}
	return guard(h.Logger(), t.Step)
}
