package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"solidguide/internal/guide"
)

// Run executes one verification pass and returns the process exit code. It is
// the black-box entrypoint: main passes os.Args[1:] and the real streams,
// tests pass argument slices and buffers.
func Run(args []string, stdout, stderr io.Writer) int {
	inv, err := ParseInvocation(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitCode(err)
	}

	src, err := os.ReadFile(inv.Path)
	if err != nil {
		fmt.Fprintf(stderr, "read %s: %v\n", inv.Path, err)
		return ExitReadFailure
	}

	report := guide.Verify(src)

	switch inv.Format {
	case FormatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			// The verdict stands even when stdout is gone; CI reads the code.
			fmt.Fprintf(stderr, "write report: %v\n", err)
		}
	default:
		writeText(stdout, inv.Path, report)
	}

	if report.HasErrors() {
		return ExitFindings
	}
	if inv.Strict && len(report.Warnings()) > 0 {
		return ExitFindings
	}
	return ExitClean
}

// writeText prints one "severity line rule message" row per finding, then a
// summary. Line 0 means the finding concerns the document as a whole.
func writeText(w io.Writer, path string, report *guide.Report) {
	for _, f := range report.Findings {
		fmt.Fprintf(w, "%s %d %s %s\n", f.Severity, f.Line, f.Rule, f.Message)
	}
	fmt.Fprintf(w, "%s: %s\n", path, report.Summary())
}
