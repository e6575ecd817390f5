//go:build !js

package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

const contextReadyTimeout = 2 * time.Second

func platformInitContext(sampleRate int) (*oto.Context, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	select {
	case <-ready:
		return ctx, nil
	case <-time.After(contextReadyTimeout):
		return nil, errors.New("audio device did not become ready")
	}
}
