package ping

import (
	"fmt"
	"os"
	"time"
)

// Volume and frequency bounds enforced during validation.
const (
	MinVolume    = 0.0
	MaxVolume    = 1.0
	MinFrequency = 20.0
	MaxFrequency = 20000.0
)

// Source is the sound to play: exactly one of a bundled preset, a
// synthesized tone, or an audio file on disk. Modeling the source as a
// variant keeps "exactly one" enforced by construction rather than by
// checks scattered through playback.
type Source interface {
	// Describe returns a short human phrase, e.g. `preset "Stop"`.
	Describe() string
	isSource()
}

// PresetSource plays a bundled clip. Name is canonically cased.
type PresetSource struct {
	Name string
}

func (s PresetSource) Describe() string { return fmt.Sprintf("preset %q", s.Name) }
func (PresetSource) isSource()          {}

// ToneSource plays a synthesized sine wave.
type ToneSource struct {
	Frequency float64
	Duration  time.Duration
}

func (s ToneSource) Describe() string {
	return fmt.Sprintf("%gHz tone for %dms", s.Frequency, s.Duration.Milliseconds())
}
func (ToneSource) isSource() {}

// FileSource plays an audio file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Describe() string { return fmt.Sprintf("file %q", s.Path) }
func (FileSource) isSource()          {}

// Request is a validated playback request, immutable once built.
type Request struct {
	Source   Source
	Volume   float64
	Repeat   int
	Interval time.Duration
}

// RawRequest holds agent-ping flag values before validation. FrequencySet
// distinguishes an explicit --frequency 0 from the flag being absent.
type RawRequest struct {
	Preset       string
	Frequency    float64
	FrequencySet bool
	FilePath     string
	DurationMS   int
	Volume       float64
	Repeat       int
	IntervalMS   int
}

// NewRequest validates raw flag values and builds a Request. Checks run in
// a fixed order and the first failure wins; no audio I/O happens here.
func NewRequest(raw RawRequest) (Request, error) {
	sources := 0
	if raw.Preset != "" {
		sources++
	}
	if raw.FrequencySet {
		sources++
	}
	if raw.FilePath != "" {
		sources++
	}
	switch {
	case sources == 0:
		return Request{}, newError(CodeMissingSoundSource,
			"missing sound source: provide one of --sound, --frequency, or --file")
	case sources > 1:
		return Request{}, newError(CodeMissingSoundSource,
			"missing sound source: --sound, --frequency, and --file are mutually exclusive")
	}

	if raw.Volume < MinVolume || raw.Volume > MaxVolume {
		return Request{}, newError(CodeInvalidVolume,
			"invalid volume %g: must be between %g and %g", raw.Volume, MinVolume, MaxVolume)
	}

	if raw.Repeat < 1 {
		return Request{}, newError(CodeInvalidArgument,
			"invalid repeat count %d: must be at least 1", raw.Repeat)
	}
	if raw.IntervalMS < 0 {
		return Request{}, newError(CodeInvalidArgument,
			"invalid interval %dms: must not be negative", raw.IntervalMS)
	}

	req := Request{
		Volume:   raw.Volume,
		Repeat:   raw.Repeat,
		Interval: time.Duration(raw.IntervalMS) * time.Millisecond,
	}

	switch {
	case raw.FrequencySet:
		if raw.Frequency < MinFrequency || raw.Frequency > MaxFrequency {
			return Request{}, newError(CodeInvalidFrequency,
				"invalid frequency %gHz: must be between %gHz and %gHz",
				raw.Frequency, MinFrequency, MaxFrequency)
		}
		if raw.DurationMS <= 0 {
			return Request{}, newError(CodeInvalidArgument,
				"invalid duration %dms: must be positive", raw.DurationMS)
		}
		req.Source = ToneSource{
			Frequency: raw.Frequency,
			Duration:  time.Duration(raw.DurationMS) * time.Millisecond,
		}
	case raw.Preset != "":
		p, ok := LookupPreset(raw.Preset)
		if !ok {
			return Request{}, newError(CodeUnknownPreset,
				"unknown preset %q: run agent-ping --list for available presets", raw.Preset)
		}
		req.Source = PresetSource{Name: p.Name}
	default:
		// Existence is re-checked at open time; a race between this check
		// and playback is accepted.
		if _, err := os.Stat(raw.FilePath); err != nil {
			return Request{}, newError(CodeFileNotFound, "file not found: %s", raw.FilePath)
		}
		req.Source = FileSource{Path: raw.FilePath}
	}

	return req, nil
}
