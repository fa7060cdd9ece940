package waver

import (
	"github.com/go-audio/audio"
)

// Floats collects the first n samples of a single wave.
func Floats(w Wave, n int) []float64 {
	it := w.Iter()
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = it.Next()
	}
	return samples
}

// Samples collects up to n quantized samples of a waveform. It returns
// fewer than n samples when the iterator terminates on amplitude overflow.
func Samples[T BitDepth](wf *Waveform[T], n int) []T {
	samples := make([]T, 0, n)
	it := wf.Iter()
	for len(samples) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		samples = append(samples, v)
	}
	return samples
}

// IntBuffer renders up to n quantized samples into a mono go-audio
// integer PCM buffer at the waveform's sampling rate. The buffer is
// shorter than n when the iterator terminates on amplitude overflow.
func IntBuffer[T BitDepth](wf *Waveform[T], n int) *audio.IntBuffer {
	quantized := Samples(wf, n)
	data := make([]int, len(quantized))
	for i, v := range quantized {
		data[i] = int(v)
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(wf.SampleRate()),
		},
		SourceBitDepth: int(bitSize[T]()),
		Data:           data,
	}
}

// FloatBuffer renders the first n samples of a single wave into a mono
// go-audio float PCM buffer at the wave's sampling rate.
func FloatBuffer(w Wave, n int) *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(w.SampleRate),
		},
		Data: Floats(w, n),
	}
}
