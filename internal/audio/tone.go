package audio

import (
	"math"
	"time"
)

// Waveform is the oscillator shape of a Tone.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Square
	Sawtooth
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// WaveformFromString parses a waveform name, defaulting to Triangle.
func WaveformFromString(s string) Waveform {
	switch s {
	case "sine":
		return Sine
	case "square":
		return Square
	case "sawtooth", "saw":
		return Sawtooth
	default:
		return Triangle
	}
}

// Tone is an oscillator with exponential pitch and gain ramps. Pitch moves
// from StartHz to EndHz over Sweep, gain from Gain to EndGain over Decay;
// both hold their end value afterwards. The voice ends at Stop.
type Tone struct {
	Shape   Waveform
	StartHz float64
	EndHz   float64
	Sweep   time.Duration
	Gain    float64
	EndGain float64
	Decay   time.Duration
	Stop    time.Duration
}

// Pop is the bubble pop: a short falling triangle blip.
var Pop = Tone{
	Shape:   Triangle,
	StartHz: 180,
	EndHz:   90,
	Sweep:   100 * time.Millisecond,
	Gain:    0.2,
	EndGain: 0.001,
	Decay:   200 * time.Millisecond,
	Stop:    220 * time.Millisecond,
}

// NewVoice renders the tone at sampleRate.
func (t Tone) NewVoice(sampleRate int) Voice {
	return &toneVoice{
		tone: t,
		sr:   float64(sampleRate),
		n:    int(t.Stop.Seconds() * float64(sampleRate)),
	}
}

type toneVoice struct {
	tone  Tone
	sr    float64
	i, n  int
	phase float64 // cycles, [0,1)
}

func (v *toneVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	t := float64(v.i) / v.sr
	freq := expRamp(v.tone.StartHz, v.tone.EndHz, t, v.tone.Sweep.Seconds())
	gain := expRamp(v.tone.Gain, v.tone.EndGain, t, v.tone.Decay.Seconds())
	s := oscillate(v.tone.Shape, v.phase) * gain

	v.phase += freq / v.sr
	v.phase -= math.Floor(v.phase)
	v.i++
	return s, false
}

// expRamp interpolates exponentially from a to b over dur seconds. Values
// that cannot be ramped exponentially (non-positive) step at the end.
func expRamp(a, b, t, dur float64) float64 {
	if dur <= 0 || t >= dur {
		return b
	}
	if a <= 0 || b <= 0 {
		return a
	}
	return a * math.Pow(b/a, t/dur)
}

func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case Sine:
		return math.Sin(2 * math.Pi * phase)
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	default:
		// starts at zero and rises, like a sine
		p := math.Mod(phase+0.25, 1)
		if p < 0.5 {
			return 4*p - 1
		}
		return 3 - 4*p
	}
}
