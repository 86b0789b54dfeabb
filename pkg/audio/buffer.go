// Package audio defines the decoded-buffer model the analysis core
// operates on, plus the thin WAV decode boundary the CLI uses to
// produce one. The analyzers borrow buffers read-only and never
// retain them past a call.
package audio

import (
	"errors"
	"fmt"
)

// ErrInvalidBuffer marks input that fails the analysis preconditions:
// zero channels, zero-length channels, or non-positive duration.
// It is the only error class that escapes the analysis boundary.
var ErrInvalidBuffer = errors.New("invalid audio buffer")

// Buffer holds a decoded multichannel signal. Per-channel sample
// slices are equal length, nominal range [-1, 1]. A Buffer is never
// mutated after construction.
type Buffer struct {
	sampleRate int
	channels   [][]float64
}

// NewBuffer validates and wraps decoded per-channel samples.
func NewBuffer(sampleRate int, channels [][]float64) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, sampleRate)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: zero channels", ErrInvalidBuffer)
	}

	n := len(channels[0])
	if n == 0 {
		return nil, fmt.Errorf("%w: zero-length channel data", ErrInvalidBuffer)
	}
	for i, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d",
				ErrInvalidBuffer, i, len(ch), n)
		}
	}

	return &Buffer{sampleRate: sampleRate, channels: channels}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.channels) }

// Len returns the per-channel sample count.
func (b *Buffer) Len() int { return len(b.channels[0]) }

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Len()) / float64(b.sampleRate)
}

// Channel returns channel i. The returned slice is borrowed; callers
// must not modify it.
func (b *Buffer) Channel(i int) []float64 { return b.channels[i] }

// Downmix returns a freshly allocated mono signal: the per-sample
// arithmetic mean across all channels.
func (b *Buffer) Downmix() []float64 {
	if b.NumChannels() == 1 {
		mono := make([]float64, b.Len())
		copy(mono, b.channels[0])
		return mono
	}

	mono := make([]float64, b.Len())
	scale := 1.0 / float64(b.NumChannels())
	for _, ch := range b.channels {
		for i, s := range ch {
			mono[i] += s
		}
	}
	for i := range mono {
		mono[i] *= scale
	}
	return mono
}

// Validate re-checks the analysis preconditions. Buffers built through
// NewBuffer always pass; this guards zero-value misuse.
func (b *Buffer) Validate() error {
	if b == nil || len(b.channels) == 0 {
		return fmt.Errorf("%w: zero channels", ErrInvalidBuffer)
	}
	if b.Len() == 0 {
		return fmt.Errorf("%w: zero-length channel data", ErrInvalidBuffer)
	}
	if b.Duration() <= 0 {
		return fmt.Errorf("%w: non-positive duration", ErrInvalidBuffer)
	}
	return nil
}
