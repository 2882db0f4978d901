// Package lsp demonstrates the Liskov Substitution Principle. Any Animal can
// stand in for any other wherever an Animal is expected: every implementation
// honors the same behavioral contract, a non-empty name and a non-empty sound.
package lsp

import "fmt"

// Animal is the contract consumers program against.
type Animal interface {
	Name() string
	MakeSound() string
}

type Dog struct{}

func (Dog) Name() string { return "dog" }

func (Dog) MakeSound() string { return "woof" }

type Cat struct{}

func (Cat) Name() string { return "cat" }

func (Cat) MakeSound() string { return "meow" }

// Chorus renders one line per animal. It treats every implementation
// identically; swapping a Dog for a Cat (or anything else that honors the
// contract) never changes its correctness.
func Chorus(animals []Animal) []string {
	out := make([]string, 0, len(animals))
	for _, a := range animals {
		out = append(out, fmt.Sprintf("the %s says %s", a.Name(), a.MakeSound()))
	}
	return out
}
