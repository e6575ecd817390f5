package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var (
	ErrEmptySample = errors.New("audio: sample contains no audio")
	ErrNotWAV      = errors.New("audio: not a .wav file")
	// ErrCancelled is returned when the user dismisses the sample picker.
	ErrCancelled = errors.New("audio: sample selection cancelled")
)

// Sample is a decoded mono PCM buffer played back once per trigger.
type Sample struct {
	Name string
	data []float32
}

func (s *Sample) NewVoice(int) Voice { return &sampleVoice{buf: s.data} }

// Duration is the length of the sample in seconds.
func (s *Sample) Duration() float64 { return float64(len(s.data)) / SampleRate }

type sampleVoice struct {
	buf []float32
	i   int
}

func (v *sampleVoice) Sample() (float64, bool) {
	if v.i >= len(v.buf) {
		return 0, true
	}
	s := float64(v.buf[v.i])
	v.i++
	return s, false
}

// DecodeSample reads a WAV stream, resampling it to SampleRate and
// downmixing it to mono.
func DecodeSample(name string, r io.Reader) (*Sample, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, r)
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", name, err)
	}
	raw, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav %s: %w", name, err)
	}
	// 16-bit little endian stereo frames
	frames := len(raw) / 4
	if frames == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySample, name)
	}
	data := make([]float32, frames)
	for i := range data {
		l := int16(uint16(raw[4*i]) | uint16(raw[4*i+1])<<8)
		r := int16(uint16(raw[4*i+2]) | uint16(raw[4*i+3])<<8)
		data[i] = (float32(l) + float32(r)) / 2 / 32768
	}
	return &Sample{Name: name, data: data}, nil
}

// LoadSample decodes the WAV file at path.
func LoadSample(path string) (*Sample, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return nil, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sample: %w", err)
	}
	defer f.Close()
	return DecodeSample(path, f)
}
