package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/waver-go/waver"
	"github.com/waver-go/waver/config"
)

const chordTOML = `
sample_rate = 44100.0
normalize = true

[[waves]]
func = "Sine"
frequency = 440.0

[[waves]]
func = "Triangle"
frequency = 220.0
phase = 1.5
amplitude = 0.5
`

func TestParseAndBuild(t *testing.T) {
	cfg, err := config.Parse([]byte(chordTOML))
	if err != nil {
		t.Fatal(err)
	}
	wf, err := config.Build[int16](cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Normalization overrides the per-wave amplitude weights.
	want := []waver.Wave{
		{SampleRate: 44100, Frequency: 440, Amplitude: 0.5, Func: waver.Sine},
		{SampleRate: 44100, Frequency: 220, Phase: 1.5, Amplitude: 0.5, Func: waver.Triangle},
	}
	if diff := cmp.Diff(want, wf.Components()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
	if wf.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %v, want 44100", wf.SampleRate())
	}
}

func TestBuildDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("sample_rate = 500.0\n\n[[waves]]\nfrequency = 130.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	wf, err := config.Build[int16](cfg)
	if err != nil {
		t.Fatal(err)
	}

	want := []waver.Wave{
		{SampleRate: 500, Frequency: 130, Amplitude: 1, Func: waver.Sine},
	}
	if diff := cmp.Diff(want, wf.Components()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Run("unknown func", func(t *testing.T) {
		cfg, err := config.Parse([]byte("sample_rate = 500.0\n\n[[waves]]\nfunc = \"Sinc\"\n"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := config.Build[int16](cfg); err == nil {
			t.Error("Build accepted an unknown wave function")
		}
	})
	t.Run("zero sampling rate", func(t *testing.T) {
		cfg, err := config.Parse([]byte("[[waves]]\nfrequency = 130.0\n"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := config.Build[int16](cfg); err == nil {
			t.Error("Build accepted a zero sampling rate")
		}
	})
	t.Run("normalize empty", func(t *testing.T) {
		cfg, err := config.Parse([]byte("sample_rate = 500.0\nnormalize = true\n"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := config.Build[int16](cfg); err == nil {
			t.Error("Build normalized an empty waveform")
		}
	})
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chord.toml")
	if err := os.WriteFile(path, []byte(chordTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Waves) != 2 {
		t.Errorf("got %d waves, want 2", len(cfg.Waves))
	}

	if _, err := config.ParseFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("ParseFile accepted a missing file")
	}
	if _, err := config.Parse([]byte("sample_rate = [")); err == nil {
		t.Error("Parse accepted malformed TOML")
	}
}
