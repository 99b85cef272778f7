package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the runner after N ticks (0 = run until Keys is exhausted or ctx ends).
	Ticks uint64
	// Keys is typed into the keyboard one character per tick. Once it has been consumed the
	// runner performs one more step and returns.
	Keys string
	// Log receives log lines (default stdout).
	Log io.Writer
}

// RunHeadless runs the calculator without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	out := cfg.Log
	if out == nil {
		out = os.Stdout
	}

	h := newHost(out, DefaultWidth, DefaultHeight)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	script := []rune(cfg.Keys)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			scripted := len(script) > 0
			if scripted {
				h.kbd.push(scriptEvent(script[0]))
				script = script[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
			if cfg.Keys != "" && !scripted {
				return nil
			}
		}
	}
}
