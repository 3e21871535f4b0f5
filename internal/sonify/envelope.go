package sonify

// #region stages

// Stage identifies the envelope state a note is in at a given time offset.
type Stage int

const (
	StageAttack Stage = iota
	StageDecay
	StageSustain
	StageRelease
	StageDone
)

// #endregion stages

// #region envelope

// Envelope is the per-note ADSR amplitude shaper, modeled as a finite state
// machine over time-in-state: Attack ramps 0→1, Decay settles to the sustain
// level, Sustain holds, Release ramps to 0 so note boundaries never click.
type Envelope struct {
	attack  float64
	decay   float64
	release float64
	sustain float64 // sustain level, not a duration
	total   float64
}

// NewEnvelope sizes the stages for a note of the given duration. When the
// note is shorter than attack+decay+release, the three ramps are scaled down
// proportionally and the sustain hold collapses to zero, so even very short
// notes pass through every stage.
func NewEnvelope(duration float64) Envelope {
	e := Envelope{
		attack:  minF(0.01, duration*0.1),
		decay:   minF(0.02, duration*0.2),
		release: minF(0.05, duration*0.3),
		sustain: 0.7,
		total:   duration,
	}
	ramps := e.attack + e.decay + e.release
	if ramps > duration && ramps > 0 {
		scale := duration / ramps
		e.attack *= scale
		e.decay *= scale
		e.release *= scale
	}
	return e
}

// StageAt returns the stage active at offset t and the time spent in it.
func (e Envelope) StageAt(t float64) (Stage, float64) {
	switch {
	case t < 0:
		return StageAttack, 0
	case t < e.attack:
		return StageAttack, t
	case t < e.attack+e.decay:
		return StageDecay, t - e.attack
	case t < e.total-e.release:
		return StageSustain, t - e.attack - e.decay
	case t < e.total:
		return StageRelease, t - (e.total - e.release)
	}
	return StageDone, t - e.total
}

// Amplitude evaluates the envelope at offset t.
func (e Envelope) Amplitude(t float64) float64 {
	stage, inStage := e.StageAt(t)
	switch stage {
	case StageAttack:
		if e.attack == 0 {
			return 1
		}
		return inStage / e.attack
	case StageDecay:
		if e.decay == 0 {
			return e.sustain
		}
		return 1 - (1-e.sustain)*(inStage/e.decay)
	case StageSustain:
		return e.sustain
	case StageRelease:
		if e.release == 0 {
			return 0
		}
		return e.sustain * (1 - inStage/e.release)
	}
	return 0
}

// #endregion envelope

// #region helpers

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// #endregion helpers
