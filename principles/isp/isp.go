// Package isp demonstrates the Interface Segregation Principle. Instead of
// one fat Animal interface that forces penguins to implement Fly, capabilities
// are split: Mammal walks, Bird flies, and every type implements only what it
// can actually do.
package isp

// Mammal is the walking capability.
type Mammal interface {
	Walk() string
}

// Bird is the flying capability.
type Bird interface {
	Fly() string
}

type Dog struct{}

func (Dog) Walk() string { return "the dog trots" }

type Sparrow struct{}

func (Sparrow) Walk() string { return "the sparrow hops" }

func (Sparrow) Fly() string { return "the sparrow flies" }

// Penguin walks but never flies, and with segregated interfaces it never has
// to pretend otherwise.
type Penguin struct{}

func (Penguin) Walk() string { return "the penguin waddles" }

var (
	_ Mammal = Dog{}
	_ Mammal = Penguin{}
	_ Mammal = Sparrow{}
	_ Bird   = Sparrow{}
)

// DescribeWalk needs only the walking capability, so every walker qualifies.
func DescribeWalk(m Mammal) string { return m.Walk() }

// DescribeFlight needs only the flying capability.
func DescribeFlight(b Bird) string { return b.Fly() }
