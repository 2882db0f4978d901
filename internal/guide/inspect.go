// Package guide parses and verifies the SOLID guide document. The document is
// plain Markdown; goldmark provides the AST, and the rules in verify.go encode
// the structural contract the guide must satisfy.
package guide

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ErrInvalidEncoding is returned when the source is not valid UTF-8.
var ErrInvalidEncoding = errors.New("guide source is not valid UTF-8")

// Section is a heading in the document. Principle holds the matched SOLID
// acronym when the heading introduces one of the five principle sections.
type Section struct {
	Title     string `json:"title"`
	Level     int    `json:"level"`
	Line      int    `json:"line"`
	Principle string `json:"principle,omitempty"`
}

// Snippet is a fenced code block. Section names the heading the snippet
// appears under; Principle is set when that heading is a principle section.
type Snippet struct {
	Language  string `json:"language"`
	Code      string `json:"code"`
	Line      int    `json:"line"`
	Section   string `json:"section,omitempty"`
	Principle string `json:"principle,omitempty"`
}

// Outline is the structural inventory of a guide document: its title, every
// heading, and every fenced code block.
type Outline struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Snippets []Snippet `json:"snippets"`
}

// IsGo reports whether the snippet is marked as Go code.
func (s Snippet) IsGo() bool {
	lang := strings.ToLower(s.Language)
	return lang == "go" || lang == "golang"
}

// newMarkdown builds the goldmark instance used for both inspection and
// rendering. A fresh instance per operation keeps parse state unshared.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// Inspect parses src and returns its outline. The only parse-level failure is
// invalid UTF-8; CommonMark itself accepts any byte sequence beyond that.
func Inspect(src []byte) (*Outline, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidEncoding
	}

	doc := newMarkdown().Parser().Parse(text.NewReader(src))

	out := &Outline{
		Sections: make([]Section, 0, 8),
		Snippets: make([]Snippet, 0, 8),
	}

	// Walk in document order, tracking the section each snippet falls under.
	var curSection string
	var curPrinciple string

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			sec := Section{
				Title: nodeText(v, src),
				Level: v.Level,
				Line:  lineAt(src, headingOffset(v)),
			}
			if v.Level == 1 {
				if out.Title == "" {
					out.Title = sec.Title
				}
			} else {
				curSection = sec.Title
				curPrinciple = ""
				if p, ok := matchPrinciple(sec.Title); ok {
					sec.Principle = p.Acronym
					curPrinciple = p.Acronym
				}
			}
			out.Sections = append(out.Sections, sec)
		case *ast.FencedCodeBlock:
			out.Snippets = append(out.Snippets, Snippet{
				Language:  fenceLanguage(v, src),
				Code:      fenceBody(v, src),
				Line:      lineAt(src, fenceOffset(v)),
				Section:   curSection,
				Principle: curPrinciple,
			})
		}
		return ast.WalkContinue, nil
	})

	return out, nil
}

// nodeText collects the plain text beneath a node, so headings with inline
// emphasis or code spans still yield their full title.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func fenceLanguage(f *ast.FencedCodeBlock, src []byte) string {
	if lang := f.Language(src); lang != nil {
		return string(lang)
	}
	return ""
}

func fenceBody(f *ast.FencedCodeBlock, src []byte) string {
	var b bytes.Buffer
	lines := f.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// headingOffset returns the byte offset of the heading's first text segment.
func headingOffset(h *ast.Heading) int {
	if h.Lines().Len() > 0 {
		return h.Lines().At(0).Start
	}
	return -1
}

// fenceOffset returns a byte offset inside the fenced block: the first code
// line when there is one, otherwise the info string on the fence line.
func fenceOffset(f *ast.FencedCodeBlock) int {
	if f.Lines().Len() > 0 {
		return f.Lines().At(0).Start
	}
	if f.Info != nil {
		return f.Info.Segment.Start
	}
	return -1
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(src []byte, off int) int {
	if off < 0 {
		return 1
	}
	if off > len(src) {
		off = len(src)
	}
	return 1 + bytes.Count(src[:off], []byte{'\n'})
}
