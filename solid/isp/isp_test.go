// SPDX-License-Identifier: MIT

package isp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AhmedFarag1/go-clean-code/solid/isp"
)

func TestDuck_HasBothCapabilities(t *testing.T) {
	assert.Equal(t, "duck flies", isp.AirShow(isp.Duck{}))
	assert.Equal(t, "duck swims", isp.PoolShow(isp.Duck{}))
}

func TestFish_OnlySwims(t *testing.T) {
	assert.Equal(t, "fish swims", isp.PoolShow(isp.Fish{}))

	var swimmer isp.Swimmable = isp.Fish{}
	_, canFly := swimmer.(isp.Flyable)
	assert.False(t, canFly, "fish must not be forced into a flying interface")
}

func ExamplePoolShow() {
	fmt.Println(isp.PoolShow(isp.Duck{}))
	// Output: duck swims
}
