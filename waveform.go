package waver

import (
	"github.com/pkg/errors"
)

// ErrAmplitudeOverflow is reported by WaveformIterator.Err after the
// superposed signal exceeded the quantization range of the target bit depth
// and the iterator terminated. Normalize the component amplitudes to
// guarantee full-length output.
var ErrAmplitudeOverflow = errors.New("waver: superposed amplitude exceeds the quantization range")

// Waveform is an ordered collection of Wave components sharing one sampling
// rate. Its iterator superposes the components sample by sample and
// quantizes the sum to the bit depth T.
//
// A Waveform may be mutated (Superpose, NormalizeAmplitudes) or iterated,
// but not both at the same time.
type Waveform[T BitDepth] struct {
	sampleRate float64
	components []Wave
}

// NewWaveform constructs an empty waveform at the given sampling rate.
// Iterating an empty waveform yields an infinite sequence of zeros.
func NewWaveform[T BitDepth](sampleRate float64) (*Waveform[T], error) {
	if sampleRate <= 0 {
		return nil, errors.Errorf("waver: sampling rate must be positive, got %v", sampleRate)
	}
	return &Waveform[T]{sampleRate: sampleRate}, nil
}

// NewWaveformWith constructs a waveform with a single initial component.
// It is identical to NewWaveform followed by Superpose.
func NewWaveformWith[T BitDepth](sampleRate float64, w Wave) (*Waveform[T], error) {
	wf, err := NewWaveform[T](sampleRate)
	if err != nil {
		return nil, err
	}
	return wf.Superpose(w), nil
}

// SampleRate returns the waveform's sampling rate in Hz.
func (wf *Waveform[T]) SampleRate() float64 {
	return wf.sampleRate
}

// Components returns a copy of the wave components in superposition order.
func (wf *Waveform[T]) Components() []Wave {
	components := make([]Wave, len(wf.components))
	copy(components, wf.components)
	return components
}

// Superpose appends a copy of w as a new component. The copy's sampling
// rate is overwritten with the waveform's, so components never carry a
// foreign rate. Returns wf for chaining.
func (wf *Waveform[T]) Superpose(w Wave) *Waveform[T] {
	w.SampleRate = wf.sampleRate
	wf.components = append(wf.components, w)
	return wf
}

// NormalizeAmplitudes sets every component's amplitude weight to an equal
// share 1/N of the available amplitude. With normalized weights the
// superposed signal stays within the quantization range and the iterator
// never terminates early.
func (wf *Waveform[T]) NormalizeAmplitudes() error {
	if len(wf.components) == 0 {
		return errors.New("waver: cannot normalize an empty waveform")
	}
	ratio := 1 / float64(len(wf.components))
	for i := range wf.components {
		wf.components[i].Amplitude = ratio
	}
	return nil
}

// Iter returns a fresh iterator over the waveform's quantized sample
// sequence. Each call starts an independent sequence; every component
// advances in lock-step from index zero.
func (wf *Waveform[T]) Iter() *WaveformIterator[T] {
	iters := make([]WaveIterator, len(wf.components))
	for i, c := range wf.components {
		iters[i] = WaveIterator{wave: c}
	}
	return &WaveformIterator[T]{iters: iters}
}

// WaveformIterator produces the quantized superposition of a Waveform's
// components. The sequence is infinite unless the superposed amplitude
// overflows the range of T, in which case it terminates at the affected
// sample and Err reports ErrAmplitudeOverflow.
type WaveformIterator[T BitDepth] struct {
	iters []WaveIterator
	err   error
}

// Next returns the next quantized sample. It reports false once the
// iterator has terminated; termination is sticky.
func (it *WaveformIterator[T]) Next() (T, bool) {
	if it.err != nil {
		return 0, false
	}
	var sum float64
	for i := range it.iters {
		sum += it.iters[i].Next()
	}
	v, ok := quantize[T](sum)
	if !ok {
		it.err = ErrAmplitudeOverflow
		return 0, false
	}
	return v, true
}

// Stream fills samples with up to len(samples) quantized samples. It
// returns the number of samples streamed and whether any were streamed at
// all; n < len(samples) together with a non-nil Err means the iterator
// terminated on overflow.
func (it *WaveformIterator[T]) Stream(samples []T) (n int, ok bool) {
	for i := range samples {
		v, ok := it.Next()
		if !ok {
			return i, i > 0
		}
		samples[i] = v
	}
	return len(samples), true
}

// Err returns the reason the iterator terminated, or nil while it is still
// producing samples. It lets callers tell an overflow halt apart from
// simply having stopped consuming.
func (it *WaveformIterator[T]) Err() error {
	return it.err
}
