package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairs(t *testing.T) {
	c := betaConfig()

	assert.Equal(t, []Pair{
		{Index: 0, Input: "icon1.png", Output: "icon1_beta.png"},
		{Index: 1, Input: "icon2.png", Output: "icon2_beta.png"},
	}, c.Pairs())
}

func TestPairsStopsAtShorterList(t *testing.T) {
	c := New()
	c.SetInputFilenames([]string{"a.png", "b.png", "c.png"})
	c.SetOutputFilenames([]string{"a_dev.png"})

	assert.Equal(t, []Pair{{Index: 0, Input: "a.png", Output: "a_dev.png"}}, c.Pairs())
	assert.Empty(t, New().Pairs())
}

func TestDeriveOutputs(t *testing.T) {
	got := DeriveOutputs([]string{"icon1.png", "assets/Icon-60@2x.png", "noext"}, "_beta")
	assert.Equal(t, []string{"icon1_beta.png", "assets/Icon-60@2x_beta.png", "noext_beta"}, got)
	assert.Nil(t, DeriveOutputs(nil, "_beta"))
}

func TestSuffixFor(t *testing.T) {
	assert.Equal(t, "_beta", SuffixFor("BETA"))
	assert.Equal(t, "_beta_build", SuffixFor(" Beta  Build "))
	assert.Equal(t, "_banner", SuffixFor("   "))
}
