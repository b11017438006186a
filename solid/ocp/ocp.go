// SPDX-License-Identifier: MIT

// Package ocp demonstrates the open-closed principle.
//
// Chorus never changes when a new animal species appears: new behaviour is
// added by implementing Animal in a new type, not by editing a switch over
// known species.
package ocp

import "strings"

// Animal is the extension point. Any type that can speak participates.
type Animal interface {
	Name() string
	Speak() string
}

// Dog says woof.
type Dog struct{}

func (Dog) Name() string  { return "dog" }
func (Dog) Speak() string { return "woof" }

// Cat says meow.
type Cat struct{}

func (Cat) Name() string  { return "cat" }
func (Cat) Speak() string { return "meow" }

// Chorus collects one utterance per animal. It is closed for modification:
// extending the menagerie requires no change here.
func Chorus(animals []Animal) string {
	var b strings.Builder
	for i, a := range animals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name())
		b.WriteString(": ")
		b.WriteString(a.Speak())
	}
	return b.String()
}
