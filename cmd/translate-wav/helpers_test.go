package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleScale(t *testing.T) {
	for depth, want := range map[int]float64{
		16: maxInt16,
		24: maxInt24,
		32: maxInt32,
	} {
		got, err := sampleScale(depth)
		require.NoError(t, err)
		assert.Equal(t, want, got, "bit depth %d", depth)
	}

	_, err := sampleScale(8)
	assert.Error(t, err)
}

func TestClampSample(t *testing.T) {
	assert.Equal(t, 1000, clampSample(1000.4, maxInt16))
	assert.Equal(t, int(maxInt16), clampSample(2*maxInt16, maxInt16))
	assert.Equal(t, -int(maxInt16), clampSample(-2*maxInt16, maxInt16))
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 100: 128, 1024: 1024, 1025: 2048}
	for n, want := range cases {
		assert.Equal(t, want, nextPowerOfTwo(n), "n=%d", n)
	}
}

func TestBinFrequencies(t *testing.T) {
	freqs := binFrequencies(5, 8, 48000)
	require.Len(t, freqs, 5)
	assert.Equal(t, 0.0, freqs[0])
	assert.Equal(t, 6000.0, freqs[1])
	assert.Equal(t, 24000.0, freqs[4]) // Nyquist
}

// TestTranslateChannelsZeroDistance: translating by nothing must return
// the input unchanged up to FFT round-trip error.
func TestTranslateChannelsZeroDistance(t *testing.T) {
	const (
		frames     = 200
		sampleRate = 48000
	)

	// First-order test scene: distinct tones per channel.
	channels := make([][]float64, 4)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
		freq := 220.0 * float64(ch+1)
		for i := range channels[ch] {
			channels[ch][i] = 0.25 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
		}
	}

	out, err := translateChannels(channels, sampleRate, 0, 343.0, 1, false)
	require.NoError(t, err)
	require.Len(t, out, 4)

	for ch := range channels {
		require.Len(t, out[ch], frames)
		for i := range channels[ch] {
			assert.InDelta(t, channels[ch][i], out[ch][i], 1e-9,
				"channel %d sample %d", ch, i)
		}
	}
}

// TestTranslateChannelsEnergyPreservedAtW verifies a pure W (omni) scene
// stays finite and bounded after translation.
func TestTranslateChannelsEnergyPreservedAtW(t *testing.T) {
	const frames = 128

	channels := make([][]float64, 4)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}
	for i := range channels[0] {
		channels[0][i] = 0.5 * math.Sin(2*math.Pi*float64(i)/32)
	}

	out, err := translateChannels(channels, 48000, 0.3, 343.0, 1, false)
	require.NoError(t, err)

	for ch := range out {
		for i, v := range out[ch] {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0),
				"channel %d sample %d not finite", ch, i)
			assert.Less(t, math.Abs(v), 2.0, "channel %d sample %d", ch, i)
		}
	}
}

func TestTranslateChannelsValidation(t *testing.T) {
	_, err := translateChannels(nil, 48000, 0.5, 343.0, 1, false)
	assert.Error(t, err)

	channels := [][]float64{make([]float64, 16)}
	_, err = translateChannels(channels, 48000, -0.5, 343.0, 0, false)
	assert.Error(t, err)
}
