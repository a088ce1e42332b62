package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	assert := assert.New(t)
	r := Rect{X: 10, Y: 10, W: 100, H: 50}

	assert.True(r.Contains(10, 10))
	assert.True(r.Contains(109, 59))
	assert.False(r.Contains(110, 10))
	assert.False(r.Contains(10, 60))
	assert.False(r.Contains(9, 10))
}

func TestRect_IntersectArea(t *testing.T) {
	assert := assert.New(t)
	a := Rect{X: 0, Y: 0, W: 100, H: 100}

	b := Rect{X: 50, Y: 50, W: 100, H: 100}
	assert.EqualValues(2500, a.IntersectArea(b))

	c := Rect{X: 200, Y: 200, W: 10, H: 10}
	assert.EqualValues(0, a.IntersectArea(c))

	d := Rect{X: 0, Y: 0, W: 100, H: 100}
	assert.EqualValues(10000, a.IntersectArea(d))
}

func TestRect_CenterXY(t *testing.T) {
	assert := assert.New(t)
	r := Rect{X: 0, Y: 0, W: 200, H: 100}
	assert.EqualValues(100, r.CenterX())
	assert.EqualValues(50, r.CenterY())
}

func TestSnap_EdgesWithinThreshold(t *testing.T) {
	assert := assert.New(t)
	bounds := Rect{X: 0, Y: 0, W: 1000, H: 800}

	x, y := Snap(5, 5, 200, 200, bounds, 32)
	assert.EqualValues(0, x)
	assert.EqualValues(0, y)

	x, y = Snap(790, 590, 200, 200, bounds, 32)
	assert.EqualValues(800, x)
	assert.EqualValues(600, y)
}

func TestSnap_OutsideThresholdUnchanged(t *testing.T) {
	assert := assert.New(t)
	bounds := Rect{X: 0, Y: 0, W: 1000, H: 800}

	x, y := Snap(100, 100, 200, 200, bounds, 32)
	assert.EqualValues(100, x)
	assert.EqualValues(100, y)
}

func TestRect_Clamp(t *testing.T) {
	assert := assert.New(t)
	r := Rect{X: 0, Y: 0, W: 500, H: 400}

	x, y := r.Clamp(-50, -50, 100, 100)
	assert.EqualValues(0, x)
	assert.EqualValues(0, y)

	x, y = r.Clamp(600, 600, 100, 100)
	assert.EqualValues(400, x)
	assert.EqualValues(300, y)
}
