package model

import (
	"testing"

	"github.com/arortell/dwm/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestClient_UpdateSizeHintsComputesIsFixed(t *testing.T) {
	assert := assert.New(t)
	c := &Client{}

	c.UpdateSizeHints(WireHints{HasMin: true, HasMax: true, MinW: 300, MinH: 200, MaxW: 300, MaxH: 200})
	assert.True(c.IsFixed)

	c.UpdateSizeHints(WireHints{HasMin: true, HasMax: true, MinW: 300, MinH: 200, MaxW: 800, MaxH: 600})
	assert.False(c.IsFixed)
}

func TestClient_UpdateSizeHintsFallsBackMinToBase(t *testing.T) {
	assert := assert.New(t)
	c := &Client{}
	c.UpdateSizeHints(WireHints{HasBase: true, BaseW: 640, BaseH: 480})
	assert.EqualValues(640, c.MinW)
	assert.EqualValues(480, c.MinH)
}

func TestClient_ApplySizeHintsNoopWhenUnchanged(t *testing.T) {
	assert := assert.New(t)
	c := &Client{X: 10, Y: 10, W: 300, H: 200, BorderWidth: 1}
	screen := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	work := geom.Rect{X: 0, Y: 20, W: 1920, H: 1060}

	_, _, _, _, changed := c.ApplySizeHints(10, 10, 300, 200, false, false, false, true, screen, work, 20)
	assert.False(changed)
}

func TestClient_ApplySizeHintsClampsIncrementUnderResizeHints(t *testing.T) {
	assert := assert.New(t)
	c := &Client{X: 10, Y: 10, W: 300, H: 200, BorderWidth: 0}
	c.UpdateSizeHints(WireHints{HasBase: true, BaseW: 0, BaseH: 0, HasInc: true, IncW: 10, IncH: 10})
	screen := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	work := geom.Rect{X: 0, Y: 20, W: 1920, H: 1060}

	_, _, nw, nh, changed := c.ApplySizeHints(10, 10, 307, 204, false, true, false, false, screen, work, 20)
	// 307x204 snaps down to 300x200, which is the client's current size.
	assert.False(changed)
	assert.EqualValues(300, nw)
	assert.EqualValues(200, nh)
}

func TestClient_ApplySizeHintsEnforcesMinMax(t *testing.T) {
	assert := assert.New(t)
	c := &Client{X: 0, Y: 20, W: 300, H: 200}
	c.UpdateSizeHints(WireHints{HasMin: true, MinW: 400, MinH: 300, HasMax: true, MaxW: 500, MaxH: 400})
	screen := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	work := geom.Rect{X: 0, Y: 20, W: 1920, H: 1060}

	_, _, nw, nh, _ := c.ApplySizeHints(0, 20, 100, 100, false, true, true, false, screen, work, 20)
	assert.EqualValues(400, nw)
	assert.EqualValues(300, nh)

	_, _, nw, nh, _ = c.ApplySizeHints(0, 20, 900, 900, false, true, true, false, screen, work, 20)
	assert.EqualValues(500, nw)
	assert.EqualValues(400, nh)
}

func TestClient_ApplySizeHintsFloorsAtBarHeight(t *testing.T) {
	assert := assert.New(t)
	c := &Client{X: 0, Y: 20, W: 300, H: 200}
	screen := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	work := geom.Rect{X: 0, Y: 20, W: 1920, H: 1060}

	_, _, nw, nh, _ := c.ApplySizeHints(0, 20, 5, 5, false, false, false, true, screen, work, 20)
	assert.EqualValues(20, nw)
	assert.EqualValues(20, nh)
}
