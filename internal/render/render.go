// Package render draws text banners onto icon images.
//
// Renderer is the collaborator an overlay.Config is built for: it reads the
// banner parameters, walks the input/output pairs in order, allocates the two
// drawing surfaces for each pair, records them on a per-pair copy of the
// configuration and drops them again when the pair is done.
package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/iconbanner/internal/errors"
	"github.com/rook-computer/iconbanner/internal/overlay"
	"github.com/rook-computer/iconbanner/internal/render/layout"
)

// Result describes one rendered pair.
type Result struct {
	Pair       overlay.Pair
	Format     string
	ImageSize  overlay.Size
	BannerSize overlay.Size
	Font       string
	FontSize   float64
	Err        error
}

// Renderer renders banners sequentially. It is not safe for concurrent use.
type Renderer struct {
	Style  Style
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	fonts map[string]*fontSource
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style, fonts: map[string]*fontSource{}}
}

// Render processes every pair of cfg in order. onResult is called after each
// pair; returning a non-nil error stops the run with that error. With a nil
// onResult the first failing pair stops the run. ctx is checked between pairs.
func (r *Renderer) Render(ctx context.Context, cfg *overlay.Config, onResult func(Result) error) error {
	if err := r.Style.Validate(); err != nil {
		return err
	}
	for _, pair := range cfg.Pairs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := r.RenderPair(cfg, pair)
		if onResult == nil {
			if res.Err != nil {
				return res.Err
			}
			continue
		}
		if err := onResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RenderPair renders a single pair. cfg is only read; the surfaces live on a
// private copy and are released before RenderPair returns.
func (r *Renderer) RenderPair(cfg *overlay.Config, pair overlay.Pair) (res Result) {
	res.Pair = pair
	job := cfg.Clone()
	defer job.ClearSurfaces()

	src, format, err := decodeFile(pair.Input)
	if err != nil {
		res.Err = err
		return res
	}
	res.Format = format

	size := job.InputImageSize()
	if size.IsZero() {
		size = overlay.SizeOf(src.Bounds())
		job.SetInputImageSize(size)
	}
	bannerSize := job.BannerSize()
	switch {
	case bannerSize.IsZero():
		// A derived banner never outgrows the icon it is drawn on.
		height := math.Min(job.BannerHeight()+job.BannerHeightPadding(), size.Height)
		bannerSize = overlay.Size{Width: size.Width, Height: height}
		job.SetBannerSize(bannerSize)
	case bannerSize.Rect().Dy() > size.Rect().Dy():
		res.ImageSize, res.BannerSize = size, bannerSize
		res.Err = errors.NewWithContext(errors.ErrCodeValidation,
			fmt.Sprintf("banner height %g exceeds image height %g", bannerSize.Height, size.Height),
			map[string]any{"input": pair.Input})
		return res
	}
	res.ImageSize, res.BannerSize = size, bannerSize

	job.SetWorkingSurface(image.NewRGBA(size.Rect()))
	job.SetBannerSurface(image.NewRGBA(bannerSize.Rect()))

	if err := r.composeIcon(job, src); err != nil {
		res.Err = err
		return res
	}
	res.Font, res.FontSize, res.Err = r.drawBanner(job)
	if res.Err != nil {
		return res
	}
	if res.Err = r.compositeBanner(job); res.Err != nil {
		return res
	}
	working, _ := job.WorkingSurface()
	if res.Err = encodeFile(pair.Output, working); res.Err != nil {
		return res
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "%s -> %s (%gx%g, %s %.1fpx)", pair.Input, pair.Output, size.Width, size.Height, res.Font, res.FontSize)
	}
	return res
}

// composeIcon copies src onto the working surface, scaling when the
// configured image size differs from the source.
func (r *Renderer) composeIcon(job *overlay.Config, src image.Image) error {
	working, ok := job.WorkingSurface()
	if !ok {
		return errors.New(errors.ErrCodeInternal, "working surface not set")
	}
	dst := working.Bounds()
	if src.Bounds().Size() == dst.Size() {
		draw.Draw(working, dst, src, src.Bounds().Min, draw.Src)
		return nil
	}
	xdraw.CatmullRom.Scale(working, dst, src, src.Bounds(), xdraw.Src, nil)
	return nil
}

// loadFont resolves and parses a font once per renderer. With FontFallback
// set, an unresolvable font is replaced by the default font.
func (r *Renderer) loadFont(name string) (*fontSource, error) {
	if r.fonts == nil {
		r.fonts = map[string]*fontSource{}
	}
	if src, ok := r.fonts[name]; ok {
		return src, nil
	}
	label, data, err := resolveFont(name)
	if err != nil {
		if !r.Style.FontFallback || name == "" {
			return nil, err
		}
		if r.Logger != nil {
			r.Logger.Errorf("render", "font %q unavailable, falling back to default: %v", name, err)
		}
		label, data, err = resolveFont("")
		if err != nil {
			return nil, err
		}
	}
	src, err := parseFont(label, data)
	if err != nil {
		if !r.Style.FontFallback {
			return nil, err
		}
		if r.Logger != nil {
			r.Logger.Errorf("render", "font %q unusable, using basicfont: %v", label, err)
		}
		src = basicFontSource()
	}
	r.fonts[name] = src
	return src, nil
}

// drawBanner fills the banner surface and draws the text centered in it.
// The font size starts at the banner height and shrinks to fit the width.
func (r *Renderer) drawBanner(job *overlay.Config) (fontName string, fontSize float64, err error) {
	banner, ok := job.BannerSurface()
	if !ok {
		return "", 0, errors.New(errors.ErrCodeInternal, "banner surface not set")
	}
	fill, fg, err := r.Style.colors()
	if err != nil {
		return "", 0, err
	}
	src, err := r.loadFont(job.FontName())
	if err != nil {
		return "", 0, err
	}

	bounds := banner.Bounds()
	draw.Draw(banner, bounds, image.NewUniform(fill), image.Point{}, draw.Src)

	textArea := layout.InsetX(bounds, int(math.Round(float64(bounds.Dx())*r.Style.TextInset)))
	maxSize := math.Min(job.BannerHeight(), float64(bounds.Dy()))
	text, err := src.fitText(job.BannerText(), maxSize, textArea.Dx())
	if err != nil {
		return "", 0, err
	}
	box := layout.CenterIn(textArea, text.width, text.ascent+text.descent)
	text.baseline = image.Pt(box.Min.X, box.Min.Y+text.ascent)
	if err := src.drawText(banner, job.BannerText(), text, fg); err != nil {
		return "", 0, err
	}
	return src.name, text.size, nil
}

// compositeBanner blends the banner surface onto the working surface at the
// configured edge, centered horizontally.
func (r *Renderer) compositeBanner(job *overlay.Config) error {
	working, ok := job.WorkingSurface()
	if !ok {
		return errors.New(errors.ErrCodeInternal, "working surface not set")
	}
	banner, ok := job.BannerSurface()
	if !ok {
		return errors.New(errors.ErrCodeInternal, "banner surface not set")
	}
	bb := banner.Bounds()
	var strip image.Rectangle
	switch r.Style.Position {
	case PositionTop:
		strip = layout.AnchorTop(working.Bounds(), bb.Dy())
	case PositionBottom, "":
		strip = layout.AnchorBottom(working.Bounds(), bb.Dy())
	default:
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("unknown banner position %q", r.Style.Position))
	}
	dst := layout.CenterIn(strip, bb.Dx(), strip.Dy())
	draw.Draw(working, dst, banner, bb.Min, draw.Over)
	return nil
}
