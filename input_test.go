package demo_test

import (
	"testing"

	"github.com/gl-course/demo"
)

func TestKeyPressedIsEdgeTriggered(t *testing.T) {
	input := demo.NewInputState()

	input.SetKey(demo.KeyF1, true)
	if !input.KeyPressed(demo.KeyF1) {
		t.Fatal("expected KeyPressed on the press frame")
	}
	if !input.KeyDown(demo.KeyF1) {
		t.Fatal("expected KeyDown on the press frame")
	}

	// Next frame: key still held, possibly re-reported by key repeat.
	input.Reset()
	input.SetKey(demo.KeyF1, true)
	if input.KeyPressed(demo.KeyF1) {
		t.Error("held key must not re-trigger KeyPressed")
	}
	if !input.KeyDown(demo.KeyF1) {
		t.Error("held key must stay down")
	}

	// Release, then press again on a later frame.
	input.Reset()
	input.SetKey(demo.KeyF1, false)
	if !input.KeyReleased(demo.KeyF1) {
		t.Error("expected KeyReleased on the release frame")
	}

	input.Reset()
	input.SetKey(demo.KeyF1, true)
	if !input.KeyPressed(demo.KeyF1) {
		t.Error("expected KeyPressed after release and re-press")
	}
}

func TestResetClearsEdgesNotLevels(t *testing.T) {
	input := demo.NewInputState()
	input.SetKey(demo.KeyEscape, true)

	input.Reset()

	if input.KeyPressed(demo.KeyEscape) {
		t.Error("Reset must clear the pressed edge")
	}
	if !input.KeyDown(demo.KeyEscape) {
		t.Error("Reset must not clear the held state")
	}
}

func TestOutOfRangeKeysAreIgnored(t *testing.T) {
	input := demo.NewInputState()

	input.SetKey(demo.Key(-1), true)
	input.SetKey(demo.KeyCount, true)

	if input.KeyDown(demo.Key(-1)) || input.KeyDown(demo.KeyCount) {
		t.Error("out-of-range keys must not register")
	}
}
