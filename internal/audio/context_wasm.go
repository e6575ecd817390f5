//go:build js

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

func platformInitContext(sampleRate int) (*oto.Context, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open web audio: %w", err)
	}
	// ready only closes after a user gesture; waiting here would stall the
	// frame that is handling that gesture.
	go func() { <-ready }()
	_ = ctx.Resume()
	return ctx, nil
}
