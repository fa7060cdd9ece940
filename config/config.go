// Package config loads declarative waveform descriptions from TOML.
//
// A description names a sampling rate and any number of wave components:
//
//	sample_rate = 44100.0
//	normalize = true
//
//	[[waves]]
//	func = "Sine"
//	frequency = 440.0
//
//	[[waves]]
//	func = "Triangle"
//	frequency = 220.0
//	amplitude = 0.5
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/waver-go/waver"
)

// Config describes a waveform to construct.
type Config struct {
	// SampleRate is the sampling rate shared by all components, in Hz.
	SampleRate float64 `toml:"sample_rate"`

	// Normalize requests equal amplitude shares across all components
	// after construction.
	Normalize bool `toml:"normalize"`

	// Waves lists the components in superposition order.
	Waves []WaveConfig `toml:"waves"`
}

// WaveConfig describes a single wave component.
type WaveConfig struct {
	// Func names the periodic shape: Sine, Cosine, Square, Sawtooth or
	// Triangle. Empty means Sine.
	Func string `toml:"func"`

	// Frequency in Hz.
	Frequency float64 `toml:"frequency"`

	// Phase in radians.
	Phase float64 `toml:"phase"`

	// Amplitude weight in [0, 1]. Nil means the default weight of 1.
	Amplitude *float64 `toml:"amplitude"`
}

// Parse decodes a TOML waveform description.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "config: failed to parse waveform description")
	}
	return &cfg, nil
}

// ParseFile decodes a TOML waveform description from a file.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: failed to read %q", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %q", path)
	}
	return cfg, nil
}

// wave translates a component description into a Wave.
func (wc WaveConfig) wave() (waver.Wave, error) {
	opts := []waver.WaveOption{
		waver.WithFrequency(wc.Frequency),
		waver.WithPhase(wc.Phase),
	}
	if wc.Func != "" {
		f, err := waver.ParseWaveFunc(wc.Func)
		if err != nil {
			return waver.Wave{}, err
		}
		opts = append(opts, waver.WithFunc(f))
	}
	if wc.Amplitude != nil {
		opts = append(opts, waver.WithAmplitude(*wc.Amplitude))
	}
	return waver.NewWave(opts...), nil
}

// Build constructs the described waveform at bit depth T.
func Build[T waver.BitDepth](cfg *Config) (*waver.Waveform[T], error) {
	wf, err := waver.NewWaveform[T](cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	for i, wc := range cfg.Waves {
		w, err := wc.wave()
		if err != nil {
			return nil, errors.Wrapf(err, "config: wave %d", i)
		}
		wf.Superpose(w)
	}
	if cfg.Normalize {
		if err := wf.NormalizeAmplitudes(); err != nil {
			return nil, err
		}
	}
	return wf, nil
}
