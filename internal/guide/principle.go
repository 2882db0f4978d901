package guide

import "strings"

// Principle identifies one of the five SOLID design principles the guide
// document must cover.
type Principle struct {
	Acronym string `json:"acronym"`
	Name    string `json:"name"`
}

// principles lists the five principles in the order the guide presents them.
var principles = []Principle{
	{Acronym: "SRP", Name: "Single Responsibility Principle"},
	{Acronym: "OCP", Name: "Open/Closed Principle"},
	{Acronym: "LSP", Name: "Liskov Substitution Principle"},
	{Acronym: "ISP", Name: "Interface Segregation Principle"},
	{Acronym: "DIP", Name: "Dependency Inversion Principle"},
}

// Principles returns the canonical five principles in presentation order.
func Principles() []Principle {
	out := make([]Principle, len(principles))
	copy(out, principles)
	return out
}

// matchPrinciple reports which principle a heading refers to, if any.
// Matching is case-insensitive and tolerates punctuation variants such as
// "Open-Closed Principle" or "Open/Closed Principle (OCP)". The acronym must
// appear as a standalone word to avoid accidental substring hits.
func matchPrinciple(heading string) (Principle, bool) {
	norm := normalizeHeading(heading)
	for _, p := range principles {
		if containsWord(norm, strings.ToLower(p.Acronym)) {
			return p, true
		}
		if strings.Contains(norm, normalizeHeading(p.Name)) {
			return p, true
		}
	}
	return Principle{}, false
}

// normalizeHeading lowercases the heading and collapses every run of
// non-alphanumeric characters into a single space.
func normalizeHeading(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func containsWord(norm, word string) bool {
	for _, f := range strings.Fields(norm) {
		if f == word {
			return true
		}
	}
	return false
}
