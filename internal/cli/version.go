package cli

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version and Commit are set at build time via -ldflags.
//
//	go build -ldflags "-X github.com/kozmotic/kozmotic/internal/cli.Version=v0.1.0
//	  -X github.com/kozmotic/kozmotic/internal/cli.Commit=48cae1d"
var (
	Version = ""
	Commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and commit hash",
	Long: `Print the kozmotic version string.

When built from a tagged release, shows the release version. Otherwise
shows "dev". The git commit hash is included when known.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := versionString()
		c := Commit
		if c == "" {
			c = commitFromBuildInfo()
		}

		data := map[string]string{"version": v}
		human := "kozmotic " + v
		if c != "" {
			data["commit"] = shortCommit(c)
			human += " (" + shortCommit(c) + ")"
		}
		return newPrinter("version").Success(data, human)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionString returns the release version, or "dev" for untagged builds.
func versionString() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// commitFromBuildInfo extracts vcs.revision from Go's embedded build info.
func commitFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// shortCommit returns the first 7 characters of a commit hash.
func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
