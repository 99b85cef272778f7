// Package calc implements the calculator front end: a button grid rendered into a framebuffer that
// feeds button labels to the editor.
package calc

import (
	"fmt"

	"calcpad/editor"
	"calcpad/hal"
)

// flashFrames is how many steps a pressed button stays highlighted.
const flashFrames = 6

// Task owns the calculator state and renders it after every input.
type Task struct {
	disp hal.Display
	in   hal.Input
	log  hal.Logger

	fb    hal.Framebuffer
	d     *fbDisplay
	lay   layout
	fonts fonts

	st editor.State

	flash      int
	flashTicks int

	started bool
	dirty   bool
}

// New returns a task. Any of disp, in and log may be nil.
func New(disp hal.Display, in hal.Input, log hal.Logger) *Task {
	return &Task{
		disp:  disp,
		in:    in,
		log:   log,
		flash: -1,
		dirty: true,
	}
}

// State returns a copy of the current display state.
func (t *Task) State() editor.State { return t.st }

func (t *Task) start() {
	t.started = true
	if t.disp == nil {
		return
	}
	t.fb = t.disp.Framebuffer()
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	t.lay = newLayout(t.fb.Width(), t.fb.Height())
	if !t.lay.viewable {
		t.logf("calc: framebuffer %dx%d too small", t.fb.Width(), t.fb.Height())
		return
	}
	t.d = newFBDisplay(t.fb)
	t.fonts = loadFonts()
}

// Step drains pending keyboard and pointer input, applies it, and redraws when something changed.
func (t *Task) Step() error {
	if !t.started {
		t.start()
	}

	if t.in != nil {
		if kbd := t.in.Keyboard(); kbd != nil {
			t.drainKeys(kbd.Events())
		}
		if ptr := t.in.Pointer(); ptr != nil {
			t.drainTaps(ptr.Taps())
		}
	}

	if t.flashTicks > 0 {
		t.flashTicks--
		if t.flashTicks == 0 {
			t.dirty = true
		}
	}
	if t.dirty {
		t.render()
		t.dirty = false
	}
	return nil
}

func (t *Task) drainKeys(ch <-chan hal.KeyEvent) {
	for {
		select {
		case ev := <-ch:
			if label, ok := keyLabel(ev); ok {
				t.Press(label)
			}
		default:
			return
		}
	}
}

func (t *Task) drainTaps(ch <-chan hal.Tap) {
	for {
		select {
		case tap := <-ch:
			if i, ok := t.lay.hit(tap.X, tap.Y); ok {
				t.Press(t.lay.buttons[i].label)
			}
		default:
			return
		}
	}
}

// Press applies one button label, the way a click on that button would.
func (t *Task) Press(label string) bool {
	before := t.st.Expression
	out, ok := t.st.Press(label)
	if !ok {
		return false
	}
	t.dirty = true
	if i := t.lay.index(label); i >= 0 {
		t.flash = i
		t.flashTicks = flashFrames
	}

	if out.Evaluated {
		in, _ := editor.Parse(label)
		switch {
		case out.Err != nil:
			t.logf("calc: %s %s: %v", before, in, out.Err)
		case in.Key == editor.KeyEquals:
			t.logf("calc: %s = %s", before, t.st.Result)
		default:
			t.logf("calc: %s %s = %s", before, in, t.st.Result)
		}
	}
	return true
}

func (t *Task) logf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.WriteLineString(fmt.Sprintf(format, args...))
}
