package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRules_FirstMatchWins(t *testing.T) {
	assert := assert.New(t)
	rules := []Rule{
		{Class: "Firefox", Tags: 1 << 1, Monitor: -1},
		{Class: "Gimp", Tags: 1 << 2, IsFloating: true, Monitor: 1},
		{Class: "Gimp", Tags: 1 << 5, Monitor: 0},
	}
	c := &Client{}

	mon := ApplyRules(c, "Gimp", "gimp", "GNU Image Manipulation Program", rules, 1)

	assert.EqualValues(1<<2, c.Tags)
	assert.True(c.IsFloating)
	assert.Equal(1, mon)
}

func TestApplyRules_NoMatchFallsBackToCurrentTagset(t *testing.T) {
	assert := assert.New(t)
	rules := []Rule{{Class: "Firefox", Tags: 1 << 1}}
	c := &Client{}

	mon := ApplyRules(c, "xterm", "xterm", "", rules, 1<<4)

	assert.Equal(-1, mon)
	assert.EqualValues(1<<4, c.Tags)
	assert.False(c.IsFloating)
}

func TestApplyRules_ZeroTagsRuleStillFallsBackToCurrentTagset(t *testing.T) {
	assert := assert.New(t)
	rules := []Rule{{Class: "Gimp", IsFloating: true}}
	c := &Client{}

	ApplyRules(c, "Gimp", "gimp", "", rules, 1<<3)

	assert.True(c.IsFloating)
	assert.EqualValues(1<<3, c.Tags)
}

func TestRule_MatchesIsSubstringOnEachNonEmptyField(t *testing.T) {
	assert := assert.New(t)
	r := Rule{Class: "term"}
	assert.True(r.matches("xterm", "", ""))
	assert.False(r.matches("Firefox", "", ""))
}
