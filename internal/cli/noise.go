package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// NoiseCmd plays the background brown-noise loop.
type NoiseCmd struct {
	Play NoisePlayCmd `cmd:"" help:"Play background noise until interrupted." default:"1"`
}

type NoisePlayCmd struct{}

// Run blocks while the noise plays. The player process dies with us, so the
// loop holds the terminal until Ctrl-C instead of detaching.
func (c *NoisePlayCmd) Run(ctx *Context) error {
	if !ctx.Audio.ToggleNoise() {
		fmt.Println("Could not start playback. Check audio_enabled and that a player (paplay/aplay/afplay) is installed.")
		return nil
	}
	fmt.Println("Playing brown noise. Ctrl-C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	ctx.Audio.ToggleNoise()
	fmt.Println("\nStopped.")
	return nil
}
