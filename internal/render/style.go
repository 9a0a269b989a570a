package render

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rook-computer/iconbanner/internal/errors"
)

// Position selects the edge of the icon the banner is attached to.
type Position string

const (
	PositionBottom Position = "bottom"
	PositionTop    Position = "top"
)

// Style holds the presentation choices that are not part of the overlay
// configuration itself.
type Style struct {
	// BannerColor and TextColor are hex colours, "#rgb" or "#rrggbb".
	BannerColor string
	TextColor   string

	// Opacity of the banner fill in [0, 1]. Text is always opaque.
	Opacity float64

	Position Position

	// TextInset is the fraction of the banner width kept clear on each side of the text.
	TextInset float64

	// FontFallback renders with the default font instead of failing when the
	// configured font cannot be found.
	FontFallback bool
}

// DefaultStyle returns a dark, slightly translucent banner with white text.
func DefaultStyle() Style {
	return Style{
		BannerColor: "#000000",
		TextColor:   "#ffffff",
		Opacity:     0.75,
		Position:    PositionBottom,
		TextInset:   0.08,
	}
}

// Validate checks colours, opacity, position and inset.
func (s Style) Validate() error {
	if _, _, err := s.colors(); err != nil {
		return err
	}
	if s.Opacity < 0 || s.Opacity > 1 || math.IsNaN(s.Opacity) {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("opacity must be within [0, 1], got %g", s.Opacity))
	}
	switch s.Position {
	case PositionBottom, PositionTop:
	default:
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("unknown banner position %q", s.Position))
	}
	if s.TextInset < 0 || s.TextInset >= 0.5 || math.IsNaN(s.TextInset) {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("text inset must be within [0, 0.5), got %g", s.TextInset))
	}
	return nil
}

// colors returns the banner fill (with opacity applied) and the text colour.
func (s Style) colors() (fill color.NRGBA, text color.NRGBA, err error) {
	bc, err := colorful.Hex(s.BannerColor)
	if err != nil {
		return fill, text, errors.Wrap(errors.ErrCodeValidation, fmt.Sprintf("banner color %q", s.BannerColor), err)
	}
	tc, err := colorful.Hex(s.TextColor)
	if err != nil {
		return fill, text, errors.Wrap(errors.ErrCodeValidation, fmt.Sprintf("text color %q", s.TextColor), err)
	}
	r, g, b := bc.RGB255()
	fill = color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(s.Opacity) * 0xFF))}
	r, g, b = tc.RGB255()
	text = color.NRGBA{R: r, G: g, B: b, A: 0xFF}
	return fill, text, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
