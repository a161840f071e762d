// Package lib hold small utilities shared by the container family.
package lib

import "fmt"
import "math"
import "sort"
import "strings"

// HistogramInt64 statistical histogram over int64 samples, bucketed
// into fixed width bins between from and till, with an underflow and
// an overflow bin on either side.
type HistogramInt64 struct {
	// stats
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	bins   []int64
	// setup
	seeded bool
	from   int64
	till   int64
	width  int64
}

// NewHistogramInt64 return a new histogram object collecting samples
// between from and till into bins of width.
func NewHistogramInt64(from, till, width int64) *HistogramInt64 {
	from, till = (from/width)*width, (till/width)*width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.bins = make([]int64, ((till-from)/width)+2)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	if h.seeded == false || sample < h.minval {
		h.minval, h.seeded = sample, true
	}
	if h.maxval < sample {
		h.maxval = sample
	}
	switch {
	case sample < h.from:
		h.bins[0]++
	case sample >= h.till:
		h.bins[len(h.bins)-1]++
	default:
		h.bins[((sample-h.from)/h.width)+1]++
	}
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Min return minimum value from samples.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from samples.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(float64(h.sum) / float64(h.n))
}

// Variance return the squared deviation of samples from their mean.
func (h *HistogramInt64) Variance() int64 {
	if h.n == 0 {
		return 0
	}
	nf, meanf := float64(h.n), float64(h.Mean())
	return int64((h.sumsq / nf) - (meanf * meanf))
}

// SD return standard deviation of samples.
func (h *HistogramInt64) SD() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(math.Sqrt(float64(h.Variance())))
}

// Fullstats return a map of this histogram's statistics, including
// the non-empty bins keyed by their lower bound.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	bins := make(map[string]int64)
	for i, count := range h.bins {
		if count == 0 {
			continue
		}
		switch i {
		case 0:
			bins[fmt.Sprintf("-%v", h.from)] = count
		case len(h.bins) - 1:
			bins[fmt.Sprintf("+%v", h.till)] = count
		default:
			bins[fmt.Sprintf("%v", h.from+int64(i-1)*h.width)] = count
		}
	}
	return map[string]interface{}{
		"samples":   h.n,
		"min":       h.minval,
		"max":       h.maxval,
		"mean":      h.Mean(),
		"variance":  h.Variance(),
		"stddev":    h.SD(),
		"histogram": bins,
	}
}

// Logstring one line rendition of the non-empty bins, keys sorted.
func (h *HistogramInt64) Logstring() string {
	bins := h.Fullstats()["histogram"].(map[string]int64)
	keys := make([]string, 0, len(bins))
	for key := range bins {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%v:%v", key, bins[key]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
