package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/iconbanner/internal/assets"
	"github.com/rook-computer/iconbanner/internal/errors"
)

const fontDPI = 72

// fontSource is a parsed font. TrueType outlines are drawn with freetype;
// CFF-flavoured OpenType fonts only parse with opentype and are drawn through
// a font.Drawer. When both are nil the fixed basicfont face is used.
type fontSource struct {
	name string
	tt   *truetype.Font
	ot   *opentype.Font
}

// resolveFont maps a configured font name to font bytes. An empty name picks
// the default built-in font; otherwise built-in names win over file paths.
func resolveFont(name string) (label string, data []byte, err error) {
	if name == "" {
		name = assets.DefaultFont
	}
	if data, ok := assets.Lookup(name); ok {
		return name, data, nil
	}
	if _, statErr := os.Stat(name); statErr != nil {
		return "", nil, errors.WrapWithContext(errors.ErrCodeRender,
			fmt.Sprintf("unknown font %q (built-in: %s)", name, strings.Join(assets.Names(), ", ")),
			statErr, map[string]any{"font": name})
	}
	data, err = os.ReadFile(name)
	if err != nil {
		return "", nil, errors.WrapWithContext(errors.ErrCodeIO, "reading font file", err, map[string]any{"font": name})
	}
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)), data, nil
}

func parseFont(label string, data []byte) (*fontSource, error) {
	src := &fontSource{name: label}
	if tt, err := truetype.Parse(data); err == nil {
		src.tt = tt
		return src, nil
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeRender, "parsing font", err, map[string]any{"font": label})
	}
	src.ot = ot
	return src, nil
}

// basicFontSource is the last resort when nothing else loads.
func basicFontSource() *fontSource { return &fontSource{name: "basicfont"} }

// face returns a font.Face at sizePx pixels.
func (s *fontSource) face(sizePx float64) (font.Face, error) {
	switch {
	case s.tt != nil:
		return truetype.NewFace(s.tt, &truetype.Options{Size: sizePx, DPI: fontDPI, Hinting: font.HintingFull}), nil
	case s.ot != nil:
		face, err := opentype.NewFace(s.ot, &opentype.FaceOptions{Size: sizePx, DPI: fontDPI, Hinting: font.HintingFull})
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeRender, "creating font face", err, map[string]any{"font": s.name})
		}
		return face, nil
	default:
		return basicfont.Face7x13, nil
	}
}

// textLayout is the outcome of fitting text into a rectangle.
type textLayout struct {
	face     font.Face
	size     float64
	width    int
	ascent   int
	descent  int
	baseline image.Point
}

// fitText picks the largest size no bigger than maxSizePx at which text fits
// within maxWidthPx.
func (s *fontSource) fitText(text string, maxSizePx float64, maxWidthPx int) (textLayout, error) {
	size := maxSizePx
	for attempt := 0; attempt < 16; attempt++ {
		face, err := s.face(size)
		if err != nil {
			return textLayout{}, err
		}
		width := font.MeasureString(face, text).Ceil()
		if width <= maxWidthPx || size <= 1 || s.tt == nil && s.ot == nil {
			metrics := face.Metrics()
			return textLayout{face: face, size: size, width: width, ascent: metrics.Ascent.Ceil(), descent: metrics.Descent.Ceil()}, nil
		}
		next := size * float64(maxWidthPx) / float64(width)
		if next >= size {
			next = size - 0.5
		}
		size = max(next, 1)
	}
	face, err := s.face(size)
	if err != nil {
		return textLayout{}, err
	}
	metrics := face.Metrics()
	return textLayout{face: face, size: size, width: font.MeasureString(face, text).Ceil(), ascent: metrics.Ascent.Ceil(), descent: metrics.Descent.Ceil()}, nil
}

// drawText draws text with its baseline at layout.baseline.
func (s *fontSource) drawText(dst draw.Image, text string, layout textLayout, fg color.Color) error {
	if s.tt != nil {
		ctx := freetype.NewContext()
		ctx.SetDPI(fontDPI)
		ctx.SetFont(s.tt)
		ctx.SetFontSize(layout.size)
		ctx.SetHinting(font.HintingFull)
		ctx.SetClip(dst.Bounds())
		ctx.SetDst(dst)
		ctx.SetSrc(image.NewUniform(fg))
		if _, err := ctx.DrawString(text, freetype.Pt(layout.baseline.X, layout.baseline.Y)); err != nil {
			return errors.WrapWithContext(errors.ErrCodeRender, "drawing text", err, map[string]any{"font": s.name})
		}
		return nil
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: layout.face,
		Dot:  fixed.P(layout.baseline.X, layout.baseline.Y),
	}
	drawer.DrawString(text)
	return nil
}
