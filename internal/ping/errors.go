package ping

import "fmt"

// Code is a stable machine-readable identifier for a class of agent-ping
// failure. Codes appear verbatim in the JSON error envelope.
type Code string

const (
	CodeMissingSoundSource Code = "MISSING_SOUND_SOURCE"
	CodeUnknownPreset      Code = "UNKNOWN_PRESET"
	CodeInvalidFrequency   Code = "INVALID_FREQUENCY"
	CodeInvalidVolume      Code = "INVALID_VOLUME"
	CodeFileNotFound       Code = "FILE_NOT_FOUND"
	CodeUnsupportedFormat  Code = "UNSUPPORTED_FORMAT"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeAudioDevice        Code = "AUDIO_DEVICE_ERROR"
)

// Error is a classified agent-ping failure. Validation errors exit with
// code 1; audio device errors exit with code 2 so callers can tell an
// environmental failure from bad input.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status this error maps to.
func (e *Error) ExitCode() int {
	if e.Code == CodeAudioDevice {
		return 2
	}
	return 1
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...) + ": " + err.Error(), Err: err}
}
