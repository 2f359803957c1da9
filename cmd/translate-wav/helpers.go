package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"

	ambisonics "github.com/tphakala/go-ambisonics"
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavPCMFormat = 1
)

// minFFTSize keeps the spectral resolution sane for very short files.
const minFFTSize = 256

// readWavFile decodes a WAV file into planar float64 channels in [-1, 1].
func readWavFile(path string) ([][]float64, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding PCM data: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, 0, fmt.Errorf("missing format information")
	}

	bitDepth := int(decoder.BitDepth)
	scale, err := sampleScale(bitDepth)
	if err != nil {
		return nil, 0, 0, err
	}

	numChannels := buf.Format.NumChannels
	frames := len(buf.Data) / numChannels

	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}
	for frame := 0; frame < frames; frame++ {
		base := frame * numChannels
		for ch := 0; ch < numChannels; ch++ {
			channels[ch][frame] = float64(buf.Data[base+ch]) / scale
		}
	}

	return channels, buf.Format.SampleRate, bitDepth, nil
}

// writeWavFile encodes planar float64 channels to a PCM WAV file.
func writeWavFile(path string, channels [][]float64, sampleRate, bitDepth int) error {
	scale, err := sampleScale(bitDepth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	numChannels := len(channels)
	frames := len(channels[0])

	data := make([]int, frames*numChannels)
	for frame := 0; frame < frames; frame++ {
		base := frame * numChannels
		for ch := 0; ch < numChannels; ch++ {
			data[base+ch] = clampSample(channels[ch][frame]*scale, scale)
		}
	}

	encoder := wav.NewEncoder(f, sampleRate, bitDepth, numChannels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return err
	}
	return encoder.Close()
}

// sampleScale returns the full-scale PCM value for a bit depth.
func sampleScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

// clampSample limits a scaled sample to the symmetric PCM range.
func clampSample(v, scale float64) int {
	if v > scale {
		return int(scale)
	}
	if v < -scale {
		return -int(scale)
	}
	return int(v)
}

// translateChannels applies the axial translation operator to an
// ACN-ordered multichannel signal in the frequency domain: one forward
// FFT per channel, a per-bin matrix multiply across channels, one inverse
// FFT per channel.
func translateChannels(channels [][]float64, sampleRate int, distance, speed float64, maxOrder int, parallel bool) ([][]float64, error) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, fmt.Errorf("no audio data")
	}
	if distance < 0 {
		return nil, fmt.Errorf("distance must be non-negative")
	}

	frames := len(channels[0])
	fftSize := nextPowerOfTwo(frames)
	if fftSize < minFFTSize {
		fftSize = minFFTSize
	}

	fft := fourier.NewFFT(fftSize)
	bins := fftSize/2 + 1

	// Forward transforms, zero-padded to the FFT size.
	spectra := make([][]complex128, len(channels))
	padded := make([]float64, fftSize)
	for ch, samples := range channels {
		for i := range padded {
			padded[i] = 0
		}
		copy(padded, samples)
		spectra[ch] = fft.Coefficients(nil, padded)
	}

	// One operator per bin: the batch axis of the library maps directly
	// onto the FFT bins.
	kd, err := ambisonics.Wavenumbers(binFrequencies(bins, fftSize, sampleRate), distance, speed)
	if err != nil {
		return nil, err
	}
	translator, err := ambisonics.New(&ambisonics.Config{
		MaxOrder:       maxOrder,
		EnableParallel: parallel,
	})
	if err != nil {
		return nil, err
	}
	matrices, err := translator.Matrices(kd)
	if err != nil {
		return nil, err
	}

	// Per-bin mixing: out[i] = Σ_j T[i][j] · in[j], done pairwise as an
	// elementwise multiply of the coefficient series with the channel
	// spectrum, then accumulated.
	series := make([]complex128, bins)
	product := make([]complex128, bins)
	out := make([][]float64, len(channels))
	scale := 1.0 / float64(fftSize)

	for i := range channels {
		acc := make([]complex128, bins)
		for j := range channels {
			zero := true
			for b := range series {
				series[b] = matrices[b].At(i, j)
				if series[b] != 0 {
					zero = false
				}
			}
			if zero {
				continue
			}
			c128.Mul(product, series, spectra[j])
			for b := range acc {
				acc[b] += product[b]
			}
		}

		// Inverse transform; gonum's FFT does not normalize.
		samples := fft.Sequence(nil, acc)
		f64.Scale(samples, samples, scale)
		out[i] = samples[:frames]
	}

	return out, nil
}

// binFrequencies returns the center frequency in Hz of each real-FFT bin.
func binFrequencies(bins, fftSize, sampleRate int) []float64 {
	freqs := make([]float64, bins)
	for b := range freqs {
		freqs[b] = float64(b) * float64(sampleRate) / float64(fftSize)
	}
	return freqs
}

// nextPowerOfTwo returns the smallest power of two ≥ n.
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
