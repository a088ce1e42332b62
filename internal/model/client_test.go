package model

import (
	"testing"

	"github.com/arortell/dwm/internal/geom"
	"github.com/stretchr/testify/assert"
)

func newTestMonitor() *Monitor {
	return NewMonitor(0, geom.Rect{X: 0, Y: 0, W: 1920, H: 1080})
}

func TestMonitor_AttachPrependsInCreationOrder(t *testing.T) {
	assert := assert.New(t)
	m := newTestMonitor()
	a, b, c := &Client{Tags: 1}, &Client{Tags: 1}, &Client{Tags: 1}

	m.Attach(a)
	m.Attach(b)
	m.Attach(c)

	var order []*Client
	for _, cl := range m.Clients() {
		order = append(order, cl)
	}
	assert.Equal([]*Client{c, b, a}, order)
	assert.Same(m, a.Monitor)
}

func TestMonitor_DetachSplicesMiddleElement(t *testing.T) {
	assert := assert.New(t)
	m := newTestMonitor()
	a, b, c := &Client{Tags: 1}, &Client{Tags: 1}, &Client{Tags: 1}
	m.Attach(a)
	m.Attach(b)
	m.Attach(c)

	m.Detach(b)

	assert.Equal([]*Client{c, a}, m.Clients())
}

func TestMonitor_DetachStackPromotesNextVisibleSelected(t *testing.T) {
	assert := assert.New(t)
	m := newTestMonitor()
	a := &Client{Tags: 1}
	b := &Client{Tags: 1}
	m.Attach(a)
	m.AttachStack(a)
	m.Attach(b)
	m.AttachStack(b)
	m.Selected = b

	m.DetachStack(b)

	assert.Same(a, m.Selected)
}

func TestMonitor_DetachStackClearsSelectedWhenStackEmpty(t *testing.T) {
	assert := assert.New(t)
	m := newTestMonitor()
	a := &Client{Tags: 1}
	m.Attach(a)
	m.AttachStack(a)
	m.Selected = a

	m.DetachStack(a)

	assert.Nil(m.Selected)
}

func TestClient_IsVisibleFollowsMonitorTagset(t *testing.T) {
	assert := assert.New(t)
	m := newTestMonitor()
	m.Tagset[m.SelTags] = 1 << 2

	onTag := &Client{Monitor: m, Tags: 1 << 2}
	offTag := &Client{Monitor: m, Tags: 1 << 3}
	noMonitor := &Client{Tags: 1 << 2}

	assert.True(onTag.IsVisible())
	assert.False(offTag.IsVisible())
	assert.False(noMonitor.IsVisible())
}

func TestClient_BorderedDimensionsIncludeBothBorders(t *testing.T) {
	assert := assert.New(t)
	c := &Client{W: 100, H: 50, BorderWidth: 2}
	assert.EqualValues(104, c.BorderedW())
	assert.EqualValues(54, c.BorderedH())
}

func TestClient_SetTitleTruncatesToMaxLen(t *testing.T) {
	assert := assert.New(t)
	c := &Client{}
	long := make([]rune, MaxTitleLen+50)
	for i := range long {
		long[i] = 'x'
	}
	c.SetTitle(string(long))
	assert.Len([]rune(c.Title), MaxTitleLen)
}

func TestMonitor_NextTiledSkipsFloatingAndInvisible(t *testing.T) {
	assert := assert.New(t)
	m := newTestMonitor()
	m.Tagset[m.SelTags] = 1

	floating := &Client{Tags: 1, IsFloating: true}
	invisible := &Client{Tags: 2}
	tiled := &Client{Tags: 1}
	m.Attach(tiled)
	m.Attach(invisible)
	m.Attach(floating)

	assert.Same(tiled, m.FirstTiled())
	assert.Equal([]*Client{tiled}, m.VisibleTiled())
}

func TestMonitor_NextTiledAfterWalksPastCurrentMaster(t *testing.T) {
	assert := assert.New(t)
	m := newTestMonitor()
	m.Tagset[m.SelTags] = 1

	second := &Client{Tags: 1}
	first := &Client{Tags: 1}
	m.Attach(second)
	m.Attach(first)

	assert.Same(first, m.FirstTiled())
	assert.Same(second, m.NextTiledAfter(first))
	assert.Nil(m.NextTiledAfter(second))
	assert.Nil(m.NextTiledAfter(nil))
}
