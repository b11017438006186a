// SPDX-License-Identifier: MIT

// Package lsp demonstrates the Liskov substitution principle.
//
// The classic violation gives every Bird a Fly method and makes Penguin
// panic with "not implemented". Go sidesteps the trap: flying is a separate,
// narrow interface, and only birds that actually fly satisfy it. Code that
// needs flight asks for a Flyer and can never be handed a penguin, so every
// substitution that compiles is a valid one.
package lsp

import "fmt"

// Bird is behaviour common to all birds.
type Bird interface {
	Name() string
}

// Flyer is satisfied only by birds that can actually fly.
type Flyer interface {
	Bird
	Fly() string
}

// Sparrow flies.
type Sparrow struct{}

func (Sparrow) Name() string { return "sparrow" }
func (Sparrow) Fly() string  { return "sparrow takes off" }

// Penguin is a bird but deliberately not a Flyer.
type Penguin struct{}

func (Penguin) Name() string { return "penguin" }
func (Penguin) Swim() string { return "penguin dives" }

// Launch releases a flying bird. Passing a Penguin is a compile error, not a
// runtime surprise.
func Launch(f Flyer) string {
	return fmt.Sprintf("launching %s: %s", f.Name(), f.Fly())
}
