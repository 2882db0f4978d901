package guide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validGuide is a minimal document satisfying every rule. Tilde fences keep
// the fixture readable inside a raw string literal.
const validGuide = `# SOLID Principles in Go

A worked tour of the five principles.

## Single Responsibility Principle (SRP)

One reason to change.

~~~go
type User struct {
	ID   string
	Name string
}
~~~

## Open/Closed Principle (OCP)

Open for extension.

~~~go
type PaymentMethod interface {
	Charge(amount int64) error
}
~~~

## Liskov Substitution Principle (LSP)

Substitutable implementations.

~~~go
type Animal interface {
	Sound() string
}
~~~

## Interface Segregation Principle (ISP)

Small interfaces.

~~~go
type Bird interface {
	Fly() string
}
~~~

## Dependency Inversion Principle (DIP)

Depend on abstractions.

~~~go
type PaymentService interface {
	Pay(amount int64) (string, error)
}
~~~
`

func TestInspect_Outline(t *testing.T) {
	outline, err := Inspect([]byte(validGuide))
	require.NoError(t, err)

	assert.Equal(t, "SOLID Principles in Go", outline.Title)

	var acronyms []string
	for _, s := range outline.Sections {
		if s.Principle != "" {
			acronyms = append(acronyms, s.Principle)
		}
	}
	assert.Equal(t, []string{"SRP", "OCP", "LSP", "ISP", "DIP"}, acronyms)

	require.Len(t, outline.Snippets, 5)
	for _, sn := range outline.Snippets {
		assert.True(t, sn.IsGo(), "snippet under %s should be go", sn.Section)
		assert.NotEmpty(t, sn.Principle)
		assert.Greater(t, sn.Line, 0)
	}
	assert.Equal(t, "SRP", outline.Snippets[0].Principle)
	assert.Contains(t, outline.Snippets[0].Code, "type User struct")
}

func TestInspect_LineNumbers(t *testing.T) {
	src := "# T\n\n## Single Responsibility Principle (SRP)\n\n~~~go\ntype A struct{}\n~~~\n"

	outline, err := Inspect([]byte(src))
	require.NoError(t, err)

	require.Len(t, outline.Sections, 2)
	assert.Equal(t, 1, outline.Sections[0].Line)
	assert.Equal(t, 3, outline.Sections[1].Line)

	// Snippet line points at the first code line, where a syntax error would be.
	require.Len(t, outline.Snippets, 1)
	assert.Equal(t, 6, outline.Snippets[0].Line)
}

func TestInspect_HeadingVariants(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
		matched bool
	}{
		{"acronym suffix", "Single Responsibility Principle (SRP)", "SRP", true},
		{"acronym only", "SRP", "SRP", true},
		{"slash variant", "Open/Closed Principle", "OCP", true},
		{"dash variant", "Open-Closed Principle", "OCP", true},
		{"lowercase", "liskov substitution principle", "LSP", true},
		{"unrelated", "Further Reading", "", false},
		{"acronym inside word", "Crisp Interfaces", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := matchPrinciple(tt.heading)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, p.Acronym)
			}
		})
	}
}

func TestInspect_CRLF(t *testing.T) {
	src := strings.ReplaceAll(validGuide, "\n", "\r\n")

	outline, err := Inspect([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, "SOLID Principles in Go", outline.Title)
	require.Len(t, outline.Snippets, 5)

	// Line numbers remain 1-based line counts with CRLF endings.
	plain, err := Inspect([]byte(validGuide))
	require.NoError(t, err)
	for i := range plain.Snippets {
		assert.Equal(t, plain.Snippets[i].Line, outline.Snippets[i].Line)
	}
}

func TestInspect_InvalidUTF8(t *testing.T) {
	_, err := Inspect([]byte{'#', ' ', 0xff, 0xfe})
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestInspect_BacktickFence(t *testing.T) {
	src := "# T\n\n## ISP\n\n```go\ntype Mammal interface{ Walk() string }\n```\n"

	outline, err := Inspect([]byte(src))
	require.NoError(t, err)

	require.Len(t, outline.Snippets, 1)
	assert.Equal(t, "go", outline.Snippets[0].Language)
	assert.Equal(t, "ISP", outline.Snippets[0].Principle)
}

func TestInspect_SnippetOutsideSection(t *testing.T) {
	src := "# T\n\n```go\npackage main\n```\n\n## OCP\n"

	outline, err := Inspect([]byte(src))
	require.NoError(t, err)

	require.Len(t, outline.Snippets, 1)
	assert.Empty(t, outline.Snippets[0].Section)
	assert.Empty(t, outline.Snippets[0].Principle)
}
