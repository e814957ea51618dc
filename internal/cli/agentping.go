package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/kozmotic/kozmotic/internal/ping"
	"github.com/spf13/cobra"
)

var (
	pingSound     string
	pingFile      string
	pingFrequency float64
	pingDuration  int
	pingVolume    float64
	pingRepeat    int
	pingInterval  int
	pingList      bool
	pingDryRun    bool
)

var agentPingCmd = &cobra.Command{
	Use:   "agent-ping",
	Short: "Play a notification sound",
	Long: `Agent-ping plays a notification sound to signal completion of an
automated agent task, typically from a hook callback.

The sound comes from exactly one of three sources: a bundled preset
(--sound), a synthesized sine tone (--frequency), or an audio file on disk
(--file). Playback blocks until the clip finishes; with --repeat the clip
plays multiple times with a fixed pause in between.`,
	Example: `  kozmotic agent-ping --sound Stop
  kozmotic agent-ping --sound TaskCompleted --volume 0.8 --repeat 2
  kozmotic agent-ping --frequency 880 --duration 300
  kozmotic agent-ping --file ~/sounds/done.mp3
  kozmotic agent-ping --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter("agent-ping")

		// --list short-circuits all validation.
		if pingList {
			return p.Success(presetListPayload(), humanPresetList())
		}

		req, err := ping.NewRequest(ping.RawRequest{
			Preset:       pingSound,
			Frequency:    pingFrequency,
			FrequencySet: cmd.Flags().Changed("frequency"),
			FilePath:     pingFile,
			DurationMS:   pingDuration,
			Volume:       pingVolume,
			Repeat:       pingRepeat,
			IntervalMS:   pingInterval,
		})
		if err != nil {
			return p.Error(errCode(err), err)
		}

		if pingDryRun {
			return p.Success(newPlayResult(req, false),
				fmt.Sprintf("Would play %s %s at volume %g.", req.Source.Describe(), times(req.Repeat), req.Volume))
		}

		if err := ping.Play(req); err != nil {
			return p.Error(errCode(err), err)
		}
		return p.Success(newPlayResult(req, true),
			fmt.Sprintf("Played %s %s at volume %g.", req.Source.Describe(), times(req.Repeat), req.Volume))
	},
}

func init() {
	agentPingCmd.Flags().StringVar(&pingSound, "sound", "", "bundled preset to play (see --list)")
	agentPingCmd.Flags().StringVar(&pingFile, "file", "", "audio file to play (.wav, .mp3, .ogg, .flac)")
	agentPingCmd.Flags().Float64Var(&pingFrequency, "frequency", 0, "tone frequency in Hz (20-20000)")
	agentPingCmd.Flags().IntVar(&pingDuration, "duration", 200, "tone duration in milliseconds")
	agentPingCmd.Flags().Float64Var(&pingVolume, "volume", 0.5, "playback volume between 0.0 and 1.0")
	agentPingCmd.Flags().IntVar(&pingRepeat, "repeat", 1, "number of times to play the sound")
	agentPingCmd.Flags().IntVar(&pingInterval, "interval", 100, "milliseconds to wait between repeats")
	agentPingCmd.Flags().BoolVar(&pingList, "list", false, "list available presets and exit")
	agentPingCmd.Flags().BoolVar(&pingDryRun, "dry-run", false, "validate and describe without playing")
	rootCmd.AddCommand(agentPingCmd)
}

// playResult is the agent-ping success payload.
type playResult struct {
	Played      bool    `json:"played"`
	Source      string  `json:"source"`
	Preset      string  `json:"preset,omitempty"`
	FrequencyHz float64 `json:"frequency_hz,omitempty"`
	DurationMS  int64   `json:"duration_ms,omitempty"`
	File        string  `json:"file,omitempty"`
	Volume      float64 `json:"volume"`
	Repeat      int     `json:"repeat"`
	IntervalMS  int64   `json:"interval_ms"`
}

func newPlayResult(req ping.Request, played bool) playResult {
	r := playResult{
		Played:     played,
		Source:     req.Source.Describe(),
		Volume:     req.Volume,
		Repeat:     req.Repeat,
		IntervalMS: req.Interval.Milliseconds(),
	}
	switch s := req.Source.(type) {
	case ping.PresetSource:
		r.Preset = s.Name
	case ping.ToneSource:
		r.FrequencyHz = s.Frequency
		r.DurationMS = s.Duration.Milliseconds()
	case ping.FileSource:
		r.File = s.Path
	}
	return r
}

type presetList struct {
	Presets []ping.Preset `json:"presets"`
	Count   int           `json:"count"`
}

func presetListPayload() presetList {
	ps := ping.Presets()
	return presetList{Presets: ps, Count: len(ps)}
}

// humanPresetList renders the preset table for --format human.
func humanPresetList() string {
	var buf bytes.Buffer
	t := NewTable(&buf, "PRESET", "ASSET")
	for _, p := range ping.Presets() {
		t.Row(p.Name, p.Asset)
	}
	t.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

// errCode extracts the stable error code for the envelope.
func errCode(err error) string {
	var perr *ping.Error
	if errors.As(err, &perr) {
		return string(perr.Code)
	}
	return "INTERNAL_ERROR"
}

func times(n int) string {
	if n == 1 {
		return "once"
	}
	return fmt.Sprintf("%d times", n)
}
