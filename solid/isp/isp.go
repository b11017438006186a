// SPDX-License-Identifier: MIT

// Package isp demonstrates the interface segregation principle.
//
// Flyable and Swimmable stay separate so that no implementation is forced to
// stub out a capability it lacks. Duck satisfies both; consumers ask for
// exactly the capability they use, which is also the idiomatic size for Go
// interfaces.
package isp

// Flyable is the flying capability on its own.
type Flyable interface {
	Fly() string
}

// Swimmable is the swimming capability on its own.
type Swimmable interface {
	Swim() string
}

// Duck both flies and swims.
type Duck struct{}

func (Duck) Fly() string  { return "duck flies" }
func (Duck) Swim() string { return "duck swims" }

// Fish only swims. It never has to pretend it can fly.
type Fish struct{}

func (Fish) Swim() string { return "fish swims" }

// AirShow needs flight and nothing more.
func AirShow(f Flyable) string {
	return f.Fly()
}

// PoolShow needs swimming and nothing more.
func PoolShow(s Swimmable) string {
	return s.Swim()
}
