// Package overlay holds the configuration a banner render pass works from.
//
// Config is a passive carrier: it stores what the CLI decided and hands it to
// the renderer. It never validates, never injects defaults and never fails.
// Validation is the caller's job (see Validate).
package overlay

import (
	"image"
	"image/draw"
	"math"
	"slices"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether both dimensions are zero, meaning "not set".
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Rect returns the pixel rectangle anchored at the origin, rounding up
// fractional dimensions.
func (s Size) Rect() image.Rectangle {
	return image.Rect(0, 0, int(math.Ceil(s.Width)), int(math.Ceil(s.Height)))
}

// SizeOf returns the size of r.
func SizeOf(r image.Rectangle) Size {
	return Size{Width: float64(r.Dx()), Height: float64(r.Dy())}
}

// Config carries the banner parameters, the paired file lists and the two
// drawing surfaces used while rendering.
//
// The surfaces are borrowed. Whoever allocates them releases them; Config
// only remembers them. An unset surface reads back as (nil, false).
//
// Config is not safe for concurrent mutation.
type Config struct {
	bannerText          string
	bannerHeight        float64
	bannerHeightPadding float64
	inputImageSize      Size
	bannerSize          Size
	fontName            string
	outputFilenames     []string
	inputFilenames      []string

	workingSurface draw.Image
	bannerSurface  draw.Image
}

// New returns an empty configuration. Text fields read back empty and no
// surfaces are set.
func New() *Config { return &Config{} }

func (c *Config) BannerText() string           { return c.bannerText }
func (c *Config) BannerHeight() float64        { return c.bannerHeight }
func (c *Config) BannerHeightPadding() float64 { return c.bannerHeightPadding }
func (c *Config) InputImageSize() Size         { return c.inputImageSize }
func (c *Config) BannerSize() Size             { return c.bannerSize }
func (c *Config) FontName() string             { return c.fontName }

// InputFilenames returns a copy of the source paths.
func (c *Config) InputFilenames() []string { return cloneStrings(c.inputFilenames) }

// OutputFilenames returns a copy of the destination paths.
func (c *Config) OutputFilenames() []string { return cloneStrings(c.outputFilenames) }

func (c *Config) SetBannerText(text string)              { c.bannerText = text }
func (c *Config) SetBannerHeight(height float64)         { c.bannerHeight = height }
func (c *Config) SetBannerHeightPadding(padding float64) { c.bannerHeightPadding = padding }
func (c *Config) SetInputImageSize(size Size)            { c.inputImageSize = size }
func (c *Config) SetBannerSize(size Size)                { c.bannerSize = size }
func (c *Config) SetFontName(name string)                { c.fontName = name }

// SetInputFilenames stores a copy of names.
func (c *Config) SetInputFilenames(names []string) { c.inputFilenames = cloneStrings(names) }

// SetOutputFilenames stores a copy of names.
func (c *Config) SetOutputFilenames(names []string) { c.outputFilenames = cloneStrings(names) }

// WorkingSurface returns the surface the final icon is composited on.
func (c *Config) WorkingSurface() (draw.Image, bool) {
	return c.workingSurface, c.workingSurface != nil
}

// BannerSurface returns the surface the banner is drawn on before compositing.
func (c *Config) BannerSurface() (draw.Image, bool) {
	return c.bannerSurface, c.bannerSurface != nil
}

// SetWorkingSurface records a borrowed surface. Passing nil marks it unset.
func (c *Config) SetWorkingSurface(surface draw.Image) { c.workingSurface = surface }

// SetBannerSurface records a borrowed surface. Passing nil marks it unset.
func (c *Config) SetBannerSurface(surface draw.Image) { c.bannerSurface = surface }

// ClearSurfaces forgets both surfaces. It does not release them.
func (c *Config) ClearSurfaces() {
	c.workingSurface = nil
	c.bannerSurface = nil
}

// Clone returns an independent copy. File lists are copied; surfaces are
// shared references, since Config never owns them.
func (c *Config) Clone() *Config {
	out := *c
	out.inputFilenames = cloneStrings(c.inputFilenames)
	out.outputFilenames = cloneStrings(c.outputFilenames)
	return &out
}

// Equal reports field-by-field equality. Surfaces compare by identity.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.bannerText == other.bannerText &&
		c.bannerHeight == other.bannerHeight &&
		c.bannerHeightPadding == other.bannerHeightPadding &&
		c.inputImageSize == other.inputImageSize &&
		c.bannerSize == other.bannerSize &&
		c.fontName == other.fontName &&
		slices.Equal(c.inputFilenames, other.inputFilenames) &&
		slices.Equal(c.outputFilenames, other.outputFilenames) &&
		c.workingSurface == other.workingSurface &&
		c.bannerSurface == other.bannerSurface
}

// cloneStrings keeps nil distinct from empty so a value reads back exactly as set.
func cloneStrings(input []string) []string {
	if input == nil {
		return nil
	}
	out := make([]string, len(input))
	copy(out, input)
	return out
}

