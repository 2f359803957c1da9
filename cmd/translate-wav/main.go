// Command translate-wav translates the listening position of an ambisonic
// WAV file along the front axis.
//
// Usage:
//
//	translate-wav -distance 0.5 input.wav output.wav
//	translate-wav -distance 0.25 -order 3 input.wav output.wav
//	translate-wav -distance 1.0 -speed 1481 input.wav output.wav
//
// The input must be an ACN-ordered, N3D-normalized ambisonic file with a
// complete channel set (4, 9, 16, ... channels). Each channel is
// transformed to the frequency domain, every bin is multiplied by the
// translation operator for that bin's non-dimensional wavenumber, and the
// result is transformed back. Translation in other directions is obtained
// by rotating the scene first with any ambisonic rotator plugin.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	ambisonics "github.com/tphakala/go-ambisonics"
)

// CLI defaults
const (
	defaultDistance = 0.5 // meters along the front axis
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	distance := flag.Float64("distance", defaultDistance, "Translation distance in meters (non-negative; rotate the scene to translate elsewhere)")
	speed := flag.Float64("speed", ambisonics.SpeedOfSoundAir, "Speed of sound in m/s")
	order := flag.Int("order", 0, "Ambisonics order (0 = derive from channel count)")
	parallel := flag.Bool("parallel", true, "Compute bin operators in parallel")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		flag.Usage()
		return fmt.Errorf("expected input and output file paths")
	}
	inputPath, outputPath := args[0], args[1]

	channels, sampleRate, bitDepth, err := readWavFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	maxOrder := *order
	if maxOrder == 0 {
		derived, ok := ambisonics.OrderForChannels(len(channels))
		if !ok {
			return fmt.Errorf("%d channels is not a complete ambisonic set; pass -order explicitly", len(channels))
		}
		maxOrder = derived
	} else if ambisonics.ChannelCount(maxOrder) != len(channels) {
		return fmt.Errorf("order %d needs %d channels, file has %d",
			maxOrder, ambisonics.ChannelCount(maxOrder), len(channels))
	}

	log.Printf("Translating %s: order %d, %d channels, %d Hz, %.2f m along front axis",
		inputPath, maxOrder, len(channels), sampleRate, *distance)

	start := time.Now()
	translated, err := translateChannels(channels, sampleRate, *distance, *speed, maxOrder, *parallel)
	if err != nil {
		return err
	}
	log.Printf("Processed %d samples per channel in %v", len(channels[0]), time.Since(start))

	if err := writeWavFile(outputPath, translated, sampleRate, bitDepth); err != nil {
		// Leave no partial output behind.
		os.Remove(outputPath)
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	log.Printf("Wrote %s", outputPath)
	return nil
}
