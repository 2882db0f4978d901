package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"solidguide/internal/guide"
)

// cleanGuide satisfies every verification rule: one title, all five principle
// sections, one parsing go snippet each.
const cleanGuide = `# SOLID Principles in Go

## Single Responsibility Principle (SRP)

~~~go
type Registration struct{ repo UserRepository }
~~~

## Open/Closed Principle (OCP)

~~~go
type Processor struct{ methods []PaymentMethod }
~~~

## Liskov Substitution Principle (LSP)

~~~go
func MakeAnimalSound(a Animal) string { return a.MakeSound() }
~~~

## Interface Segregation Principle (ISP)

~~~go
type Bird interface{ Fly() }
~~~

## Dependency Inversion Principle (DIP)

~~~go
type Checkout struct{ payments PaymentService }
~~~
`

// warningGuide is publishable but carries one untagged fence, which verifies
// as a warning.
const warningGuide = `# SOLID Principles in Go

~~~
go run ./cmd/guidecheck README.md
~~~

## Single Responsibility Principle (SRP)

~~~go
type User struct{ Name string }
~~~

## Open/Closed Principle (OCP)

~~~go
type CreditCard struct{ Number string }
~~~

## Liskov Substitution Principle (LSP)

~~~go
type Dog struct{}
~~~

## Interface Segregation Principle (ISP)

~~~go
type Mammal interface{ Walk() }
~~~

## Dependency Inversion Principle (DIP)

~~~go
type PayPalPaymentService struct{}
~~~
`

// brokenGuide drops the DIP section and ships an unparsable SRP snippet:
// exactly two error findings.
const brokenGuide = `# SOLID Principles in Go

## Single Responsibility Principle (SRP)

~~~go
func broken( {
~~~

## Open/Closed Principle (OCP)

~~~go
type BankTransfer struct{ IBAN string }
~~~

## Liskov Substitution Principle (LSP)

~~~go
type Cat struct{}
~~~

## Interface Segregation Principle (ISP)

~~~go
type Sparrow struct{}
~~~
`

func writeGuide(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guide.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRun_CleanDocument(t *testing.T) {
	path := writeGuide(t, cleanGuide)
	var stdout, stderr bytes.Buffer

	code := Run([]string{path}, &stdout, &stderr)

	if code != ExitClean {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", ExitClean, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "0 errors, 0 warnings") {
		t.Fatalf("missing summary line, got:\n%s", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected empty stderr, got: %s", stderr.String())
	}
}

func TestRun_FindingsInText(t *testing.T) {
	path := writeGuide(t, brokenGuide)
	var stdout, stderr bytes.Buffer

	code := Run([]string{path}, &stdout, &stderr)

	if code != ExitFindings {
		t.Fatalf("expected exit %d, got %d", ExitFindings, code)
	}

	out := stdout.String()
	if !strings.Contains(out, "principle-missing") {
		t.Fatalf("expected a principle-missing finding, got:\n%s", out)
	}
	if !strings.Contains(out, "snippet-syntax") {
		t.Fatalf("expected a snippet-syntax finding, got:\n%s", out)
	}
	if !strings.Contains(out, "2 errors, 0 warnings") {
		t.Fatalf("unexpected summary, got:\n%s", out)
	}

	// Every finding row leads with its severity.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, line := range lines[:len(lines)-1] {
		if !strings.HasPrefix(line, "error ") && !strings.HasPrefix(line, "warning ") {
			t.Fatalf("finding row does not lead with severity: %q", line)
		}
	}
}

func TestRun_JSONReport(t *testing.T) {
	path := writeGuide(t, brokenGuide)
	var stdout, stderr bytes.Buffer

	code := Run([]string{"-format", "json", path}, &stdout, &stderr)

	if code != ExitFindings {
		t.Fatalf("expected exit %d, got %d", ExitFindings, code)
	}

	var report guide.Report
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("stdout is not a JSON report: %v\n%s", err, stdout.String())
	}
	if !report.HasErrors() {
		t.Fatalf("decoded report has no errors: %#v", report)
	}
	if report.Outline.Title != "SOLID Principles in Go" {
		t.Fatalf("unexpected outline title: %q", report.Outline.Title)
	}
}

func TestRun_JSONCleanDocument(t *testing.T) {
	path := writeGuide(t, cleanGuide)
	var stdout, stderr bytes.Buffer

	code := Run([]string{"-format", "json", path}, &stdout, &stderr)

	if code != ExitClean {
		t.Fatalf("expected exit %d, got %d", ExitClean, code)
	}

	var report guide.Report
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("stdout is not a JSON report: %v", err)
	}
	if len(report.Findings) != 0 {
		t.Fatalf("expected no findings, got %#v", report.Findings)
	}
}

func TestRun_StrictPromotesWarnings(t *testing.T) {
	path := writeGuide(t, warningGuide)

	var stdout, stderr bytes.Buffer
	if code := Run([]string{path}, &stdout, &stderr); code != ExitClean {
		t.Fatalf("warnings should not fail without -strict, got exit %d:\n%s", code, stdout.String())
	}
	if !strings.Contains(stdout.String(), "fence-language") {
		t.Fatalf("warning should still be reported, got:\n%s", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"-strict", path}, &stdout, &stderr); code != ExitFindings {
		t.Fatalf("-strict should promote warnings, got exit %d", code)
	}
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.md")
	var stdout, stderr bytes.Buffer

	code := Run([]string{path}, &stdout, &stderr)

	if code != ExitReadFailure {
		t.Fatalf("expected exit %d, got %d", ExitReadFailure, code)
	}
	if !strings.Contains(stderr.String(), "read") {
		t.Fatalf("expected a read error on stderr, got: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected empty stdout, got: %s", stdout.String())
	}
}

func TestRun_InvalidInvocation(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Run(nil, &stdout, &stderr)

	if code != ExitInvalidInvocation {
		t.Fatalf("expected exit %d, got %d", ExitInvalidInvocation, code)
	}
	if stderr.Len() == 0 {
		t.Fatalf("expected the invocation error on stderr")
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected empty stdout, got: %s", stdout.String())
	}
}
