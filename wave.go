// Package waver generates discrete-time samples of periodic waveforms and
// superposes them into a single quantized signal.
//
// A Wave describes one periodic tone (sampling rate, frequency, phase,
// amplitude weight and shape) and yields an infinite sequence of float64
// samples in [-1, 1]. A Waveform holds any number of Wave components at a
// common sampling rate and yields an infinite sequence of integer samples,
// quantized to a caller-chosen fixed-width bit depth.
package waver

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// WaveFunc selects the periodic shape that maps an angle to a value in [-1, 1].
type WaveFunc int

const (
	// Sine is sin(x).
	Sine WaveFunc = iota

	// Cosine is cos(x).
	Cosine

	// Square is the sign of sin(x). The sign of an exact zero follows the
	// sign bit of the underlying sine value.
	Square

	// Sawtooth ramps linearly from -1 to 1 over each 2π period, dropping
	// back at the wrap point. The ramp follows the truncated remainder of
	// the angle, so negative angles (negative frequency or phase) land in
	// (-3, -1] instead of [-1, 1]; keep frequency and phase non-negative
	// for samples within the usual range.
	Sawtooth

	// Triangle is the continuous piecewise-linear wave (2/π)·asin(sin(x)).
	Triangle
)

func (f WaveFunc) String() string {
	switch f {
	case Sine:
		return "Sine"
	case Cosine:
		return "Cosine"
	case Square:
		return "Square"
	case Sawtooth:
		return "Sawtooth"
	case Triangle:
		return "Triangle"
	}
	return fmt.Sprintf("WaveFunc(%d)", int(f))
}

// ParseWaveFunc resolves a shape name as rendered by WaveFunc.String.
func ParseWaveFunc(name string) (WaveFunc, error) {
	for _, f := range []WaveFunc{Sine, Cosine, Square, Sawtooth, Triangle} {
		if name == f.String() {
			return f, nil
		}
	}
	return 0, errors.Errorf("waver: unknown wave function %q", name)
}

// Wave describes a single periodic tone. It is a plain value: construct it
// with NewWave or with a struct literal, copy it freely, and don't mutate it
// while iterators over it are in use.
type Wave struct {
	// SampleRate is the number of samples per second. The zero value is a
	// degenerate, uninitialized state; iterating such a wave yields NaN.
	SampleRate float64

	// Frequency is the number of cycles per second. Zero produces a constant
	// sequence of Amplitude·shape(Phase); negative reverses the phase
	// direction.
	Frequency float64

	// Phase in radians, added inside the periodic function argument.
	Phase float64

	// Amplitude weight in [0, 1] by convention (not enforced), scaling every
	// sample.
	Amplitude float64

	// Func selects the periodic shape.
	Func WaveFunc
}

// WaveOption configures a Wave built by NewWave.
type WaveOption func(*Wave)

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(hz float64) WaveOption {
	return func(w *Wave) { w.SampleRate = hz }
}

// WithFrequency sets the frequency in Hz.
func WithFrequency(hz float64) WaveOption {
	return func(w *Wave) { w.Frequency = hz }
}

// WithPhase sets the phase shift in radians.
func WithPhase(rad float64) WaveOption {
	return func(w *Wave) { w.Phase = rad }
}

// WithAmplitude sets the amplitude weight.
func WithAmplitude(a float64) WaveOption {
	return func(w *Wave) { w.Amplitude = a }
}

// WithFunc sets the periodic shape.
func WithFunc(f WaveFunc) WaveOption {
	return func(w *Wave) { w.Func = f }
}

// NewWave builds a Wave with the defaults SampleRate: 0, Frequency: 0,
// Phase: 0, Amplitude: 1 and Func: Sine, then applies the given options.
func NewWave(opts ...WaveOption) Wave {
	w := Wave{Amplitude: 1, Func: Sine}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// String implements fmt.Stringer in the form
// <Func: Sine, Freq: 120Hz, Ampl: 1, Sampling Freq: 500Hz>.
func (w Wave) String() string {
	return fmt.Sprintf("<Func: %v, Freq: %vHz, Ampl: %v, Sampling Freq: %vHz>",
		w.Func, w.Frequency, w.Amplitude, w.SampleRate)
}

// Iter returns a fresh iterator over the wave's infinite sample sequence.
// Every call starts an independent sequence from index zero; concurrent
// iterators over the same Wave are safe as each holds its own state.
//
// A wave with a zero sampling rate divides by zero and yields NaN forever.
func (w Wave) Iter() *WaveIterator {
	return &WaveIterator{wave: w}
}

// WaveIterator produces the infinite sample sequence of a single Wave.
type WaveIterator struct {
	wave  Wave
	index float64
}

// indexInc returns the current sample index and advances it. The index
// cycles after one second worth of samples, which bounds the time value fed
// into the angle computation and with it the floating-point error.
func (it *WaveIterator) indexInc() float64 {
	idx := it.index
	it.index = math.Mod(it.index, it.wave.SampleRate) + 1
	return idx
}

// Next computes the next sample. The sequence never ends.
func (it *WaveIterator) Next() float64 {
	t := it.indexInc() / it.wave.SampleRate
	angle := 2*math.Pi*t*it.wave.Frequency + it.wave.Phase
	return it.wave.Amplitude * shape(it.wave.Func, angle)
}

func shape(f WaveFunc, x float64) float64 {
	switch f {
	case Cosine:
		return math.Cos(x)
	case Square:
		return math.Copysign(1, math.Sin(x))
	case Sawtooth:
		return math.Mod(x, 2*math.Pi)/math.Pi - 1
	case Triangle:
		return 2 / math.Pi * math.Asin(math.Sin(x))
	}
	return math.Sin(x)
}
