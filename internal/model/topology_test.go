package model

import (
	"testing"

	"github.com/arortell/dwm/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestDedupeScreens_RemovesDuplicateGeometries(t *testing.T) {
	assert := assert.New(t)
	screens := []geom.Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 1080, H: 1080},
	}

	out := DedupeScreens(screens)

	assert.Len(out, 2)
}

func TestRebuildTopology_GrowsMonitorsOnNewScreen(t *testing.T) {
	assert := assert.New(t)
	screens := []geom.Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 1080, H: 1080},
	}

	monitors, dirty, selected := RebuildTopology(nil, screens, NewMonitor)

	assert.True(dirty)
	assert.Len(monitors, 2)
	assert.Same(monitors[0], selected)
	assert.Equal(0, monitors[0].Index)
	assert.Equal(1, monitors[1].Index)
}

func TestRebuildTopology_NoopWhenUnchanged(t *testing.T) {
	assert := assert.New(t)
	screens := []geom.Rect{{X: 0, Y: 0, W: 1920, H: 1080}}
	monitors, _, _ := RebuildTopology(nil, screens, NewMonitor)

	_, dirty, _ := RebuildTopology(monitors, screens, NewMonitor)

	assert.False(dirty)
}

func TestRebuildTopology_ShrinkMigratesClientsToSurvivor(t *testing.T) {
	assert := assert.New(t)
	screens2 := []geom.Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 1080, H: 1080},
	}
	monitors, _, _ := RebuildTopology(nil, screens2, NewMonitor)
	doomed := monitors[1]
	c := &Client{Tags: 1}
	doomed.Attach(c)
	doomed.AttachStack(c)
	doomed.Selected = c

	screens1 := []geom.Rect{{X: 0, Y: 0, W: 1920, H: 1080}}
	monitors, dirty, selected := RebuildTopology(monitors, screens1, NewMonitor)

	assert.True(dirty)
	assert.Len(monitors, 1)
	assert.Same(monitors[0], selected)
	assert.Contains(monitors[0].Clients(), c)
	assert.Same(monitors[0], c.Monitor)
}
