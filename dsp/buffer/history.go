package buffer

import "fmt"

// History holds the most recent samples of a stream in a circular buffer.
type History struct {
	samples  []float64
	writePos int
	filled   int
}

// NewHistory returns an empty history with the given fixed capacity.
func NewHistory(capacity int) (*History, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history capacity must be > 0: %d", capacity)
	}
	return &History{samples: make([]float64, capacity)}, nil
}

// Cap returns the fixed capacity.
func (h *History) Cap() int {
	return len(h.samples)
}

// Len returns the number of samples currently held.
func (h *History) Len() int {
	return h.filled
}

// Append adds one sample, evicting the oldest when the window is full.
func (h *History) Append(x float64) {
	h.samples[h.writePos] = x
	h.writePos++
	if h.writePos >= len(h.samples) {
		h.writePos = 0
	}
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Fill primes the window to full capacity with the given value.
// Existing contents are discarded.
func (h *History) Fill(x float64) {
	for i := range h.samples {
		h.samples[i] = x
	}
	h.writePos = 0
	h.filled = len(h.samples)
}

// Tail returns a copy of the newest n samples in chronological order
// (oldest first, newest last).
func (h *History) Tail(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("history tail length must be >= 0: %d", n)
	}
	if n > h.filled {
		return nil, fmt.Errorf("history holds %d samples, need %d", h.filled, n)
	}

	out := make([]float64, n)
	read := h.writePos - n
	if read < 0 {
		read += len(h.samples)
	}
	for i := range out {
		out[i] = h.samples[read]
		read++
		if read >= len(h.samples) {
			read = 0
		}
	}
	return out, nil
}

// Snapshot returns a chronological copy of every sample currently held.
func (h *History) Snapshot() []float64 {
	out, _ := h.Tail(h.filled)
	return out
}

// Latest returns the newest sample, or 0 for an empty history.
func (h *History) Latest() float64 {
	if h.filled == 0 {
		return 0
	}
	pos := h.writePos - 1
	if pos < 0 {
		pos = len(h.samples) - 1
	}
	return h.samples[pos]
}
