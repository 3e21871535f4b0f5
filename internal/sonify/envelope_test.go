package sonify

import (
	"math"
	"testing"
)

func TestEnvelopeStageProgression(t *testing.T) {
	// duration 1.0 → attack 0.01, decay 0.02, release 0.05
	e := NewEnvelope(1.0)

	cases := []struct {
		t     float64
		stage Stage
	}{
		{0.0, StageAttack},
		{0.005, StageAttack},
		{0.015, StageDecay},
		{0.5, StageSustain},
		{0.97, StageRelease},
		{1.5, StageDone},
	}
	for _, c := range cases {
		if stage, _ := e.StageAt(c.t); stage != c.stage {
			t.Errorf("t=%g: got stage %d, want %d", c.t, stage, c.stage)
		}
	}
}

func TestEnvelopeTimeInStage(t *testing.T) {
	e := NewEnvelope(1.0)
	stage, inStage := e.StageAt(0.02)
	if stage != StageDecay {
		t.Fatalf("expected decay at t=0.02, got %d", stage)
	}
	if math.Abs(inStage-0.01) > 1e-12 {
		t.Errorf("time in decay: got %g, want 0.01", inStage)
	}
}

func TestEnvelopeAmplitudeShape(t *testing.T) {
	e := NewEnvelope(1.0)

	if got := e.Amplitude(0); got != 0 {
		t.Errorf("attack start: got %g, want 0", got)
	}
	if got := e.Amplitude(0.01); math.Abs(got-1) > 1e-9 {
		t.Errorf("attack peak: got %g, want 1", got)
	}
	if got := e.Amplitude(0.5); got != 0.7 {
		t.Errorf("sustain: got %g, want 0.7", got)
	}
	if got := e.Amplitude(2.0); got != 0 {
		t.Errorf("after note: got %g, want 0", got)
	}

	// Release ramps monotonically to zero.
	prev := e.Amplitude(0.95)
	for _, tt := range []float64{0.96, 0.97, 0.98, 0.99} {
		cur := e.Amplitude(tt)
		if cur > prev {
			t.Errorf("release not monotonic at t=%g: %g > %g", tt, cur, prev)
		}
		prev = cur
	}
}

func TestEnvelopeShortNotePassesAllStages(t *testing.T) {
	// A 20ms note still has every ramp, just proportionally sized.
	e := NewEnvelope(0.02)
	seen := map[Stage]bool{}
	for tt := 0.0; tt < 0.02; tt += 0.0005 {
		stage, _ := e.StageAt(tt)
		seen[stage] = true
	}
	for _, want := range []Stage{StageAttack, StageDecay, StageSustain, StageRelease} {
		if !seen[want] {
			t.Errorf("stage %d never reached on a short note", want)
		}
	}
}

func TestEnvelopeZeroDuration(t *testing.T) {
	e := NewEnvelope(0)
	if got := e.Amplitude(0); got != 0 {
		t.Errorf("zero-duration note should be silent, got %g", got)
	}
}

func TestEnvelopeAmplitudeBounded(t *testing.T) {
	for _, d := range []float64{0.01, 0.1, 0.25, 2.0} {
		e := NewEnvelope(d)
		for tt := 0.0; tt < d*1.2; tt += d / 50 {
			a := e.Amplitude(tt)
			if a < 0 || a > 1 {
				t.Fatalf("duration %g t=%g: amplitude %g out of [0,1]", d, tt, a)
			}
		}
	}
}
