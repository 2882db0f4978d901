package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const (
	ExitClean             = 0
	ExitFindings          = 1
	ExitInvalidInvocation = 2
	ExitReadFailure       = 3
)

// Format selects how the verification report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Invocation is the canonicalized description of one guidecheck run. The path
// is cleaned but deliberately not resolved: relative paths stay relative so CI
// logs show what the caller typed.
type Invocation struct {
	Path   string
	Format Format
	Strict bool
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI arguments into a canonical Invocation. It reads
// no environment variables; everything the run depends on is in args.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("guidecheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var format string
	var strict bool

	fs.StringVar(&format, "format", string(FormatText), "Report format: text|json")
	fs.BoolVar(&strict, "strict", false, "Treat warnings as failures.")

	if err := fs.Parse(args); err != nil {
		// flag package returns errors like: "flag provided but not defined: -x"
		return Invocation{}, invalidInvocationf("%v", err)
	}

	switch fs.NArg() {
	case 1:
	case 0:
		return Invocation{}, invalidInvocationf("missing guide path (usage: guidecheck [-format text|json] [-strict] <guide.md>)")
	default:
		return Invocation{}, invalidInvocationf("unexpected extra arguments: %q", strings.Join(fs.Args()[1:], " "))
	}

	parsedFormat, err := parseFormat(format)
	if err != nil {
		return Invocation{}, err
	}

	return Invocation{
		Path:   filepath.Clean(fs.Arg(0)),
		Format: parsedFormat,
		Strict: strict,
	}, nil
}

func parseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", invalidInvocationf("invalid -format %q (expected text|json)", raw)
	}
}

// ExitCode extracts the semantic exit code from a ParseInvocation error. An
// unrecognized non-nil error maps to ExitReadFailure, the only failure left
// once the invocation itself is valid.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if err == nil {
		return ExitClean
	}
	return ExitReadFailure
}
