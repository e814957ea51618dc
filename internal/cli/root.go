// Package cli defines the cobra command tree for the kozmotic CLI.
package cli

import (
	"os"

	"github.com/kozmotic/kozmotic/internal/output"
	"github.com/spf13/cobra"
)

var (
	formatFlag string
	outFormat  output.Format
)

// rootCmd is the top-level kozmotic command.
var rootCmd = &cobra.Command{
	Use:   "kozmotic",
	Short: "Agent-friendly CLI tools",
	Long: `kozmotic provides small, composable tools for automated coding agents.

Every command emits a uniform {status, data, metadata} envelope as
pretty-printed JSON by default; pass --format human for a short sentence
instead. Errors carry a stable machine-readable code and are written to
standard error.`,
	Example: `  # Play the completion chime from a Stop hook
  kozmotic agent-ping --sound Stop

  # Chirp an 880Hz tone three times
  kozmotic agent-ping --frequency 880 --repeat 3

  # See what would be played without touching the audio device
  kozmotic agent-ping --sound TaskCompleted --dry-run --format human`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		f, err := output.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		outFormat = f
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "json", `output format ("json" or "human")`)
}

// newPrinter returns a Printer for tool wired to the process streams.
func newPrinter(tool string) *output.Printer {
	return &output.Printer{
		Format:  outFormat,
		Tool:    tool,
		Version: versionString(),
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
