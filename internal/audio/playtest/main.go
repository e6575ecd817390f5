// Command playtest plays the pop sound a few times so the audio path can be
// checked without opening a window.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/ingyamilmolinar/popwrap/internal/audio"
	game_log "github.com/ingyamilmolinar/popwrap/internal/log"
)

func main() {
	n := flag.Int("n", 5, "number of pops")
	interval := flag.Duration("interval", 150*time.Millisecond, "time between pops")
	shape := flag.String("shape", audio.Pop.Shape.String(), "waveform: sine, triangle, square or sawtooth")
	volume := flag.Float64("volume", 1, "volume in [0,1]")
	sample := flag.String("sample", "", "play this WAV instead of the synthesized pop")
	flag.Parse()

	logger := game_log.New(os.Stderr, game_log.LevelDebug)
	e := audio.NewEngine(logger)
	e.SetVolume(*volume)

	tone := audio.Pop
	tone.Shape = audio.WaveformFromString(*shape)
	e.SetInstrument(tone)
	if *sample != "" {
		s, err := audio.LoadSample(*sample)
		if err != nil {
			logger.Errorf("[PLAYTEST] %v", err)
			os.Exit(1)
		}
		e.SetInstrument(s)
	}

	for i := 0; i < *n; i++ {
		e.Pop()
		time.Sleep(*interval)
	}
	time.Sleep(tone.Stop + 100*time.Millisecond)
}
