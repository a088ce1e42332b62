package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_ProducesNineTagNames(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	assert.Len(cfg.TagNames, 9)
	for i, name := range cfg.TagNames {
		assert.NotEmpty(name)
		_ = i
	}
}

func TestDefault_MFactWithinLayoutBounds(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	assert.GreaterOrEqual(cfg.MFactDefault, 0.1)
	assert.LessOrEqual(cfg.MFactDefault, 0.9)
}

func TestDefault_KeysAndButtonsNonEmpty(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	assert.NotEmpty(cfg.Keys)
	assert.NotEmpty(cfg.Buttons)
	assert.NotEmpty(cfg.LauncherCmd)
}

func TestDefault_ColorSchemesAreHexStrings(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	for _, c := range []Colors{cfg.NormalColors, cfg.SelectedColors, cfg.UrgentColors} {
		assert.Len(c.Border, 7)
		assert.Equal(byte('#'), c.Border[0])
	}
}

func TestApplyOverlay_LeavesUnsetFieldsAtDefault(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	origGap := cfg.WindowGap

	gap := int32(8)
	applyOverlay(&cfg, overlayFile{WindowGap: &gap})

	assert.EqualValues(8, cfg.WindowGap)
	assert.NotEqual(origGap, cfg.WindowGap)
	assert.Equal(Default().MFactDefault, cfg.MFactDefault)
	assert.Equal(Default().NormalColors, cfg.NormalColors)
}

func TestApplyOverlay_PatchesOnlyNamedTagSlots(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()

	applyOverlay(&cfg, overlayFile{TagNames: []string{"web", "code"}})

	assert.Equal("web", cfg.TagNames[0])
	assert.Equal("code", cfg.TagNames[1])
	assert.Equal("3", cfg.TagNames[2])
}
