package hal

import (
	"bytes"
	"context"
	"testing"
)

func TestRGB565_RoundTripPrimaries(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := rgb888From565(rgb565(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("rgb888From565(rgb565(%d,%d,%d)) = %d,%d,%d", tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func TestFramebuffer_SnapshotRGBA(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(255, 0, 0)
	pix := make([]byte, 3*2*4)
	fb.snapshotRGBA(pix)
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 255 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want opaque red", i/4, pix[i:i+4])
		}
	}
}

func TestRunHeadless_TypesScriptThenStops(t *testing.T) {
	var logs bytes.Buffer
	var got []KeyEvent
	var steps int

	err := RunHeadless(context.Background(), func(h HAL) func() error {
		h.Logger().WriteLineString("ready")
		kbd := h.Input().Keyboard()
		return func() error {
			steps++
			for {
				select {
				case ev := <-kbd.Events():
					got = append(got, ev)
				default:
					return nil
				}
			}
		}
	}, HeadlessConfig{Hz: 1000, Keys: "1+\n\b", Log: &logs})
	if err != nil {
		t.Fatalf("RunHeadless error: %v", err)
	}

	want := []KeyEvent{
		{Press: true, Rune: '1'},
		{Press: true, Rune: '+'},
		{Code: KeyEnter, Press: true},
		{Code: KeyBackspace, Press: true},
	}
	if len(got) != len(want) {
		t.Fatalf("events=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if steps != len(want)+1 {
		t.Fatalf("steps=%d, want %d", steps, len(want)+1)
	}
	if logs.String() != "ready\n" {
		t.Fatalf("log = %q", logs.String())
	}
}

func TestRunHeadless_TickLimit(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3, Log: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("RunHeadless error: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps=%d, want 3", steps)
	}
}

func TestRunHeadless_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(h HAL) func() error { return nil }, HeadlessConfig{Hz: 10, Log: &bytes.Buffer{}})
	if err != context.Canceled {
		t.Fatalf("RunHeadless error=%v, want context.Canceled", err)
	}
}
