package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/kozmotic/kozmotic/internal/output"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default so tests do not leak state
// through the package-level command tree.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, fs := range []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		exampleCmd.Flags(),
		agentPingCmd.Flags(),
	} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	outFormat = output.FormatJSON
}

// captureStdoutAndStderr runs fn while capturing both stdout and stderr.
func captureStdoutAndStderr(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldOut := os.Stdout
	oldErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	fn()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldOut
	os.Stderr = oldErr

	var bufOut, bufErr bytes.Buffer
	io.Copy(&bufOut, rOut)
	io.Copy(&bufErr, rErr)
	return bufOut.String(), bufErr.String()
}

// runCommand executes the root command with args and returns the captured
// streams and the execution error.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(t)

	stdout, stderr = captureStdoutAndStderr(t, func() {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	})
	return stdout, stderr, err
}

// envelope mirrors the output envelope for assertions.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		Timestamp string `json:"timestamp"`
		Tool      string `json:"tool"`
		Version   string `json:"version"`
	} `json:"metadata"`
}

// parseEnvelope unmarshals raw JSON output into an envelope.
func parseEnvelope(t *testing.T, raw string) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal envelope: %v\noutput: %s", err, raw)
	}
	return e
}
