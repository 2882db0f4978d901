package guide

import (
	"fmt"
	goparser "go/parser"
	"go/token"
	"strings"
)

// Severity classifies a finding. Errors make the document unpublishable;
// warnings do not.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule identifies the verification rule that produced a finding.
type Rule string

const (
	// RuleEncoding: the source must be valid UTF-8.
	RuleEncoding Rule = "encoding"
	// RuleTitle: exactly one top-level (H1) heading.
	RuleTitle Rule = "title"
	// RulePrincipleMissing: each of the five principle headers must be present.
	RulePrincipleMissing Rule = "principle-missing"
	// RulePrincipleDuplicate: no principle header may appear more than once.
	RulePrincipleDuplicate Rule = "principle-duplicate"
	// RuleSnippetSyntax: every go fence must be syntactically well-formed in
	// isolation (as a file, a set of declarations, or a statement list).
	RuleSnippetSyntax Rule = "snippet-syntax"
	// RuleSnippetMissing: a principle section should carry at least one go fence.
	RuleSnippetMissing Rule = "snippet-missing"
	// RuleFenceLanguage: fenced blocks should declare a language.
	RuleFenceLanguage Rule = "fence-language"
	// RuleSnippetEmpty: a go fence should not be empty.
	RuleSnippetEmpty Rule = "snippet-empty"
)

// Finding is one verification result. Line is 1-based and 0 when the finding
// concerns the document as a whole.
type Finding struct {
	Rule     Rule     `json:"rule"`
	Severity Severity `json:"severity"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
}

// Report is the outcome of verifying one document.
type Report struct {
	Outline  Outline   `json:"outline"`
	Findings []Finding `json:"findings"`
}

// HasErrors reports whether any finding is error-severity.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the error-severity findings.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity findings.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(sev Severity) []Finding {
	out := make([]Finding, 0, len(r.Findings))
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Summary renders a one-line count of findings, e.g. "2 errors, 1 warning".
func (r *Report) Summary() string {
	e, w := len(r.Errors()), len(r.Warnings())
	return fmt.Sprintf("%d %s, %d %s",
		e, plural("error", e), w, plural("warning", w))
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Verify checks src against the guide's structural contract and returns every
// finding. A report with no error findings means the document is publishable.
func Verify(src []byte) *Report {
	report := &Report{Findings: []Finding{}}

	outline, err := Inspect(src)
	if err != nil {
		report.Findings = append(report.Findings, Finding{
			Rule:     RuleEncoding,
			Severity: SeverityError,
			Message:  err.Error(),
		})
		return report
	}
	report.Outline = *outline

	report.Findings = append(report.Findings, checkTitle(outline)...)
	report.Findings = append(report.Findings, checkPrinciples(outline)...)
	report.Findings = append(report.Findings, checkSnippets(outline)...)

	return report
}

func checkTitle(o *Outline) []Finding {
	var titles []Section
	for _, s := range o.Sections {
		if s.Level == 1 {
			titles = append(titles, s)
		}
	}
	switch {
	case len(titles) == 0:
		return []Finding{{
			Rule:     RuleTitle,
			Severity: SeverityError,
			Message:  "document has no top-level title",
		}}
	case len(titles) > 1:
		return []Finding{{
			Rule:     RuleTitle,
			Severity: SeverityError,
			Line:     titles[1].Line,
			Message:  fmt.Sprintf("document has %d top-level titles, want exactly one", len(titles)),
		}}
	}
	return nil
}

func checkPrinciples(o *Outline) []Finding {
	var findings []Finding

	seen := map[string]int{}
	for _, s := range o.Sections {
		if s.Principle == "" {
			continue
		}
		seen[s.Principle]++
		if seen[s.Principle] > 1 {
			findings = append(findings, Finding{
				Rule:     RulePrincipleDuplicate,
				Severity: SeverityError,
				Line:     s.Line,
				Message:  fmt.Sprintf("section %s appears more than once", s.Principle),
			})
		}
	}

	hasGoSnippet := map[string]bool{}
	for _, sn := range o.Snippets {
		if sn.Principle != "" && sn.IsGo() {
			hasGoSnippet[sn.Principle] = true
		}
	}

	for _, p := range Principles() {
		if seen[p.Acronym] == 0 {
			findings = append(findings, Finding{
				Rule:     RulePrincipleMissing,
				Severity: SeverityError,
				Message:  fmt.Sprintf("section for %s (%s) is missing", p.Name, p.Acronym),
			})
			continue
		}
		if !hasGoSnippet[p.Acronym] {
			findings = append(findings, Finding{
				Rule:     RuleSnippetMissing,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("section %s has no go snippet", p.Acronym),
			})
		}
	}

	return findings
}

func checkSnippets(o *Outline) []Finding {
	var findings []Finding
	for _, sn := range o.Snippets {
		if sn.Language == "" {
			findings = append(findings, Finding{
				Rule:     RuleFenceLanguage,
				Severity: SeverityWarning,
				Line:     sn.Line,
				Message:  "fenced code block has no language tag",
			})
			continue
		}
		if !sn.IsGo() {
			continue
		}
		if strings.TrimSpace(sn.Code) == "" {
			findings = append(findings, Finding{
				Rule:     RuleSnippetEmpty,
				Severity: SeverityWarning,
				Line:     sn.Line,
				Message:  "go snippet is empty",
			})
			continue
		}
		if err := parseGoSnippet(sn.Code); err != nil {
			findings = append(findings, Finding{
				Rule:     RuleSnippetSyntax,
				Severity: SeverityError,
				Line:     sn.Line,
				Message:  fmt.Sprintf("go snippet does not parse: %v", err),
			})
		}
	}
	return findings
}

// parseGoSnippet accepts a fragment in any of three shapes: a complete file, a
// set of top-level declarations, or a bare statement list. Teaching snippets
// are standalone and need not compile as part of a larger program, so syntax
// is all that is required of them.
func parseGoSnippet(code string) error {
	if _, err := goparser.ParseFile(token.NewFileSet(), "snippet.go", code, 0); err == nil {
		return nil
	}

	_, declErr := goparser.ParseFile(token.NewFileSet(), "snippet.go", "package snippet\n\n"+code, 0)
	if declErr == nil {
		return nil
	}

	stmts := "package snippet\n\nfunc _() {\n" + code + "\n}\n"
	if _, err := goparser.ParseFile(token.NewFileSet(), "snippet.go", stmts, 0); err == nil {
		return nil
	}

	// Report the declaration-mode error: snippets are usually type and
	// function declarations, so that error is the most useful of the three.
	return declErr
}
