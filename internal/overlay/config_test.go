package overlay

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func betaConfig() *Config {
	c := New()
	c.SetInputFilenames([]string{"icon1.png", "icon2.png"})
	c.SetOutputFilenames([]string{"icon1_beta.png", "icon2_beta.png"})
	c.SetBannerText("BETA")
	c.SetBannerHeight(20.0)
	c.SetBannerHeightPadding(4.0)
	return c
}

func TestConfigScenarioReadsBack(t *testing.T) {
	c := betaConfig()

	assert.Equal(t, []string{"icon1.png", "icon2.png"}, c.InputFilenames())
	assert.Equal(t, []string{"icon1_beta.png", "icon2_beta.png"}, c.OutputFilenames())
	assert.Equal(t, "BETA", c.BannerText())
	assert.Equal(t, 20.0, c.BannerHeight())
	assert.Equal(t, 4.0, c.BannerHeightPadding())
	assert.Len(t, c.InputFilenames(), 2)
	assert.Len(t, c.OutputFilenames(), 2)
}

func TestConfigSetThenGetIsExact(t *testing.T) {
	c := New()

	c.SetBannerHeight(-3.5)
	assert.Equal(t, -3.5, c.BannerHeight(), "values are not clamped")

	c.SetBannerHeightPadding(0.125)
	assert.Equal(t, 0.125, c.BannerHeightPadding())

	c.SetInputImageSize(Size{Width: 1024, Height: 1024})
	assert.Equal(t, Size{Width: 1024, Height: 1024}, c.InputImageSize())

	c.SetBannerSize(Size{Width: 1024, Height: 24.5})
	assert.Equal(t, Size{Width: 1024, Height: 24.5}, c.BannerSize())

	c.SetFontName("  go-bold ")
	assert.Equal(t, "  go-bold ", c.FontName(), "names are not trimmed")

	c.SetBannerText("dev")
	c.SetBannerText("DEV")
	assert.Equal(t, "DEV", c.BannerText(), "last write wins")

	c.SetInputFilenames([]string{})
	assert.NotNil(t, c.InputFilenames())
	assert.Empty(t, c.InputFilenames())
}

func TestConfigDefaultsAreEmpty(t *testing.T) {
	c := New()

	assert.Empty(t, c.BannerText())
	assert.Empty(t, c.FontName())
	assert.Nil(t, c.InputFilenames())
	assert.Nil(t, c.OutputFilenames())
	assert.True(t, c.InputImageSize().IsZero())
	assert.True(t, c.BannerSize().IsZero())

	_, ok := c.WorkingSurface()
	assert.False(t, ok)
	_, ok = c.BannerSurface()
	assert.False(t, ok)
}

func TestConfigListsAreCopied(t *testing.T) {
	inputs := []string{"a.png"}
	c := New()
	c.SetInputFilenames(inputs)

	inputs[0] = "changed.png"
	assert.Equal(t, []string{"a.png"}, c.InputFilenames())

	got := c.InputFilenames()
	got[0] = "mutated.png"
	assert.Equal(t, []string{"a.png"}, c.InputFilenames())
}

func TestConfigSurfacesAreBorrowed(t *testing.T) {
	c := New()
	working := image.NewRGBA(image.Rect(0, 0, 4, 4))
	banner := image.NewRGBA(image.Rect(0, 0, 4, 1))

	c.SetWorkingSurface(working)
	c.SetBannerSurface(banner)

	got, ok := c.WorkingSurface()
	require.True(t, ok)
	assert.Same(t, working, got)
	got, ok = c.BannerSurface()
	require.True(t, ok)
	assert.Same(t, banner, got)

	c.ClearSurfaces()
	_, ok = c.WorkingSurface()
	assert.False(t, ok)
	_, ok = c.BannerSurface()
	assert.False(t, ok)

	// Clearing only drops the references.
	working.Set(0, 0, image.White)
	assert.Equal(t, uint8(0xff), working.RGBAAt(0, 0).R)
}

func TestConfigEqualIndependentOfOrder(t *testing.T) {
	a := betaConfig()
	a.SetFontName("go-bold")

	b := New()
	b.SetFontName("go-bold")
	b.SetBannerHeightPadding(4.0)
	b.SetBannerHeight(20.0)
	b.SetBannerText("BETA")
	b.SetOutputFilenames([]string{"icon1_beta.png", "icon2_beta.png"})
	b.SetInputFilenames([]string{"icon1.png", "icon2.png"})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.SetBannerText("DEV")
	assert.False(t, a.Equal(b))

	var nilConfig *Config
	assert.False(t, a.Equal(nilConfig))
	assert.True(t, nilConfig.Equal(nil))
}

func TestConfigClone(t *testing.T) {
	a := betaConfig()
	surface := image.NewRGBA(image.Rect(0, 0, 1, 1))
	a.SetWorkingSurface(surface)

	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.SetInputImageSize(Size{Width: 60, Height: 60})
	b.SetOutputFilenames([]string{"x.png", "y.png"})
	assert.True(t, a.InputImageSize().IsZero())
	assert.Equal(t, []string{"icon1_beta.png", "icon2_beta.png"}, a.OutputFilenames())

	got, _ := b.WorkingSurface()
	assert.Same(t, surface, got)
}

func TestSizeRect(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 60, 25), Size{Width: 60, Height: 24.2}.Rect())
	assert.Equal(t, Size{Width: 3, Height: 2}, SizeOf(image.Rect(1, 1, 4, 3)))
}
