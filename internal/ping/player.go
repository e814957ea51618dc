// Package ping resolves and plays notification sounds for agent hooks.
//
// A sound comes from one of three sources: a bundled preset clip, a
// synthesized sine tone, or an audio file on disk. Playback is synchronous;
// each play blocks until the clip finishes.
package ping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	// playbackRate is the speaker sample rate; decoded sources at other
	// rates are resampled onto it.
	playbackRate beep.SampleRate = 44100

	// speakerBuffer trades latency for underrun safety. A one-shot
	// notifier does not care about latency.
	speakerBuffer = 100 * time.Millisecond

	resampleQuality = 4
)

// Play acquires the audio device and plays the request's source
// req.Repeat times, sleeping req.Interval between plays but not after the
// last. Each play blocks until the clip finishes.
func Play(req Request) error {
	if err := speaker.Init(playbackRate, playbackRate.N(speakerBuffer)); err != nil {
		return wrapError(CodeAudioDevice, err, "acquire audio device")
	}
	defer speaker.Close()

	for i := 0; i < req.Repeat; i++ {
		if i > 0 {
			time.Sleep(req.Interval)
		}
		if err := playOnce(req); err != nil {
			return err
		}
	}
	return nil
}

// playOnce resolves the source fresh for each repeat; decoders are not
// rewindable across source types, and re-decoding a short clip is cheap.
func playOnce(req Request) error {
	s, cleanup, err := resolve(req.Source)
	if err != nil {
		return err
	}
	defer cleanup()

	done := make(chan struct{})
	speaker.Play(beep.Seq(withVolume(s, req.Volume), beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// resolve turns a Source into a streamer ready to play at playbackRate.
// The returned cleanup must be called once playback of the streamer is
// finished.
func resolve(src Source) (beep.Streamer, func(), error) {
	switch s := src.(type) {
	case PresetSource:
		p, ok := LookupPreset(s.Name)
		if !ok {
			return nil, nil, newError(CodeUnknownPreset, "unknown preset %q", s.Name)
		}
		data, err := presetData(p)
		if err != nil {
			return nil, nil, wrapError(CodeUnsupportedFormat, err, "load preset %q", p.Name)
		}
		return decode(p.Asset, io.NopCloser(bytes.NewReader(data)))
	case ToneSource:
		tone, err := generators.SineTone(playbackRate, math.Round(s.Frequency))
		if err != nil {
			return nil, nil, wrapError(CodeInvalidFrequency, err, "synthesize %gHz tone", s.Frequency)
		}
		return beep.Take(playbackRate.N(s.Duration), tone), func() {}, nil
	case FileSource:
		f, err := os.Open(s.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil, newError(CodeFileNotFound, "file not found: %s", s.Path)
			}
			return nil, nil, wrapError(CodeFileNotFound, err, "open %s", s.Path)
		}
		return decode(s.Path, f)
	}
	return nil, nil, fmt.Errorf("unhandled source type %T", src)
}

// decode picks a decoder by file extension. Decode failures are reported
// distinctly from missing files.
func decode(name string, rc io.ReadCloser) (beep.Streamer, func(), error) {
	var (
		s      beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		s, format, err = wav.Decode(rc)
	case ".mp3":
		s, format, err = mp3.Decode(rc)
	case ".ogg":
		s, format, err = vorbis.Decode(rc)
	case ".flac":
		s, format, err = flac.Decode(rc)
	default:
		rc.Close()
		return nil, nil, newError(CodeUnsupportedFormat,
			"unsupported audio format %q: supported formats are .wav, .mp3, .ogg, .flac",
			filepath.Ext(name))
	}
	if err != nil {
		rc.Close()
		return nil, nil, wrapError(CodeUnsupportedFormat, err, "decode %s", name)
	}

	cleanup := func() { s.Close() }
	if format.SampleRate == playbackRate {
		return s, cleanup, nil
	}
	return beep.Resample(resampleQuality, format.SampleRate, playbackRate, s), cleanup, nil
}

// withVolume maps the linear 0..1 request volume onto a 40dB exponential
// gain range. 1.0 is unity gain, 0.0 is fully silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     10,
		Volume:   2 * (vol - 1),
		Silent:   vol == 0,
	}
}
