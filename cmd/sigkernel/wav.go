package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var errUnsupportedWAV = errors.New("unsupported WAV format")

// wavAudio is a decoded PCM file with each channel normalised to [-1, 1].
type wavAudio struct {
	rate     int
	bitDepth int
	channels [][]float64
}

// samples returns the number of frames per channel.
func (a *wavAudio) samples() int {
	if len(a.channels) == 0 {
		return 0
	}
	return len(a.channels[0])
}

// getMaxValue returns the full-scale sample value for the given bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit samples", errUnsupportedWAV, bitDepth)
	}
}

// readWAV decodes a whole PCM WAV file.
func readWAV(path string) (*wavAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	if decoder.WavAudioFormat != wavPCMFormat {
		return nil, fmt.Errorf("%w: audio format %d is not PCM", errUnsupportedWAV, decoder.WavAudioFormat)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := getMaxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	format := decoder.Format()
	if format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: no channels", errUnsupportedWAV)
	}

	return &wavAudio{
		rate:     format.SampleRate,
		bitDepth: bitDepth,
		channels: deinterleave(buf.Data, format.NumChannels, 1/maxVal),
	}, nil
}

// writeWAV encodes a as a PCM WAV file at its own rate and bit depth.
func writeWAV(path string, a *wavAudio) (err error) {
	maxVal, err := getMaxValue(a.bitDepth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	numChannels := len(a.channels)
	encoder := wav.NewEncoder(f, a.rate, a.bitDepth, numChannels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: a.rate},
		Data:           interleave(a.channels, maxVal),
		SourceBitDepth: a.bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		_ = encoder.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close patches the RIFF and data chunk sizes.
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalise WAV file: %w", err)
	}
	return nil
}

// deinterleave splits interleaved int samples into per-channel float slices.
func deinterleave(data []int, numChannels int, invMaxVal float64) [][]float64 {
	frames := len(data) / numChannels
	out := make([][]float64, numChannels)
	for ch := range numChannels {
		out[ch] = make([]float64, frames)
	}
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			out[ch][i] = float64(data[base+ch]) * invMaxVal
		}
	}
	return out
}

// interleave merges per-channel samples into clamped, rounded int samples.
// All channels must have the same length.
func interleave(channels [][]float64, maxVal float64) []int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}
	numChannels := len(channels)
	frames := len(channels[0])
	out := make([]int, frames*numChannels)
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			sample := min(max(channels[ch][i], -1), 1)
			out[base+ch] = int(math.Round(sample * maxVal))
		}
	}
	return out
}
