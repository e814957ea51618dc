// Package output renders the uniform {status, data, metadata} envelope
// shared by all kozmotic commands, in either JSON or human format.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Format selects between machine and human rendering.
type Format int

const (
	FormatJSON Format = iota
	FormatHuman
)

// ParseFormat parses the --format flag value, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "human":
		return FormatHuman, nil
	}
	return FormatJSON, fmt.Errorf("invalid format %q: use \"json\" or \"human\"", s)
}

// Metadata describes the invocation that produced an envelope.
type Metadata struct {
	Timestamp string `json:"timestamp"`
	Tool      string `json:"tool"`
	Version   string `json:"version"`
}

// Envelope is the wrapper around all structured output.
type Envelope struct {
	Status   string   `json:"status"`
	Data     any      `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// ErrorData is the data payload of an error envelope.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Printer renders command results. Successes go to Out, errors to Err.
// In JSON mode each envelope reaches its stream in a single write, so a
// consumer never sees a partial envelope.
type Printer struct {
	Format  Format
	Tool    string
	Version string
	Out     io.Writer
	Err     io.Writer
}

// Success renders a success result: the data payload wrapped in an
// envelope for JSON, or the given sentence for human format.
func (p *Printer) Success(data any, human string) error {
	if p.Format == FormatHuman {
		_, err := fmt.Fprintln(p.Out, human)
		return err
	}
	return writeEnvelope(p.Out, p.envelope("success", data))
}

// Error reports err with its stable code on the error stream, then returns
// err unchanged so the caller can map it to an exit status.
func (p *Printer) Error(code string, err error) error {
	if p.Format == FormatHuman {
		fmt.Fprintf(p.Err, "%s %s\n", color.New(color.FgRed).Sprint("Error:"), err)
		return err
	}
	data := ErrorData{Code: code, Message: err.Error()}
	if werr := writeEnvelope(p.Err, p.envelope("error", data)); werr != nil {
		return werr
	}
	return err
}

func (p *Printer) envelope(status string, data any) Envelope {
	return Envelope{
		Status: status,
		Data:   data,
		Metadata: Metadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Tool:      p.Tool,
			Version:   p.Version,
		},
	}
}

// writeEnvelope marshals into a buffer first so the envelope hits the
// stream atomically.
func writeEnvelope(w io.Writer, e Envelope) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
