// Package config turns the YAML file, the environment and CLI flags into an
// overlay.Config and a render.Style.
//
// Precedence, lowest first: built-in defaults, the YAML file, ICONBANNER_*
// environment variables, command-line flags.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rook-computer/iconbanner/internal/errors"
	"github.com/rook-computer/iconbanner/internal/overlay"
	"github.com/rook-computer/iconbanner/internal/render"
)

const DefaultPath = ".iconbanner.yaml"

const (
	EnvText     = "ICONBANNER_TEXT"
	EnvFont     = "ICONBANNER_FONT"
	EnvHeight   = "ICONBANNER_HEIGHT"
	EnvPadding  = "ICONBANNER_PADDING"
	EnvLogLevel = "ICONBANNER_LOG_LEVEL"
)

// Icon is one input with an optional explicit output path.
type Icon struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"`
}

// Style mirrors render.Style in the file.
type Style struct {
	BannerColor  string  `yaml:"banner_color"`
	TextColor    string  `yaml:"text_color"`
	Opacity      float64 `yaml:"opacity"`
	Position     string  `yaml:"position"`
	TextInset    float64 `yaml:"text_inset"`
	FontFallback bool    `yaml:"font_fallback"`
}

// File is the on-disk configuration.
type File struct {
	Text                string  `yaml:"text"`
	Font                string  `yaml:"font"`
	BannerHeight        float64 `yaml:"banner_height"`
	BannerHeightPadding float64 `yaml:"banner_height_padding"`
	ImageSize           string  `yaml:"image_size,omitempty"`  // "WxH", empty keeps the source size
	BannerSize          string  `yaml:"banner_size,omitempty"` // "WxH", empty spans the icon width
	Suffix              string  `yaml:"suffix,omitempty"`      // output suffix, default derived from the text
	LogLevel            string  `yaml:"log_level"`
	Style               Style   `yaml:"style"`
	Icons               []Icon  `yaml:"icons,omitempty"`
}

// Default returns the built-in defaults. Font stays empty so the renderer
// picks its default font.
func Default() File {
	s := render.DefaultStyle()
	return File{
		Text:                "BETA",
		BannerHeight:        20,
		BannerHeightPadding: 4,
		LogLevel:            "info",
		Style: Style{
			BannerColor:  s.BannerColor,
			TextColor:    s.TextColor,
			Opacity:      s.Opacity,
			Position:     string(s.Position),
			TextInset:    s.TextInset,
			FontFallback: s.FontFallback,
		},
	}
}

// Load reads path on top of the defaults. When path is empty DefaultPath is
// tried and silently skipped if absent; an explicit path must exist.
func Load(path string) (File, error) {
	f := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return f, errors.WrapWithContext(errors.ErrCodeIO, "reading config", err, map[string]any{"path": path})
	}
	if err := decode(data, &f); err != nil {
		return f, errors.WrapWithContext(errors.ErrCodeConfiguration, "parsing config", err, map[string]any{"path": path})
	}
	return f, nil
}

func decode(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields from ICONBANNER_* variables. lookup is normally os.LookupEnv.
func (f *File) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvText); ok && v != "" {
		f.Text = v
	}
	if v, ok := lookup(EnvFont); ok && v != "" {
		f.Font = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		f.LogLevel = v
	}
	for _, num := range []struct {
		env string
		dst *float64
	}{
		{EnvHeight, &f.BannerHeight},
		{EnvPadding, &f.BannerHeightPadding},
	} {
		raw, ok := lookup(num.env)
		if !ok || raw == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeConfiguration, fmt.Sprintf("%s must be a number (got %q)", num.env, raw), err)
		}
		*num.dst = parsed
	}
	return nil
}

// ParseSize parses "WxH" (e.g. "1024x1024"). An empty string is the zero size.
func ParseSize(s string) (overlay.Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return overlay.Size{}, nil
	}
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return overlay.Size{}, errors.New(errors.ErrCodeConfiguration, fmt.Sprintf("size %q must look like WIDTHxHEIGHT", s))
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return overlay.Size{}, errors.Wrap(errors.ErrCodeConfiguration, fmt.Sprintf("size %q: bad width", s), err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return overlay.Size{}, errors.Wrap(errors.ErrCodeConfiguration, fmt.Sprintf("size %q: bad height", s), err)
	}
	return overlay.Size{Width: width, Height: height}, nil
}

// Overlay builds the overlay configuration. inputs/outputs from the command
// line replace the file's icons. Missing outputs are derived by suffix;
// explicit outputs are passed through untouched so a length mismatch is left
// for overlay.Validate to report.
func (f File) Overlay(inputs, outputs []string) (*overlay.Config, error) {
	imageSize, err := ParseSize(f.ImageSize)
	if err != nil {
		return nil, err
	}
	bannerSize, err := ParseSize(f.BannerSize)
	if err != nil {
		return nil, err
	}

	suffix := f.Suffix
	if suffix == "" {
		suffix = overlay.SuffixFor(f.Text)
	}

	if len(inputs) == 0 {
		inputs, outputs = f.iconPaths(suffix)
	} else if len(outputs) == 0 {
		outputs = overlay.DeriveOutputs(inputs, suffix)
	}

	cfg := overlay.New()
	cfg.SetBannerText(f.Text)
	cfg.SetFontName(f.Font)
	cfg.SetBannerHeight(f.BannerHeight)
	cfg.SetBannerHeightPadding(f.BannerHeightPadding)
	cfg.SetInputImageSize(imageSize)
	cfg.SetBannerSize(bannerSize)
	cfg.SetInputFilenames(inputs)
	cfg.SetOutputFilenames(outputs)
	return cfg, nil
}

func (f File) iconPaths(suffix string) (inputs, outputs []string) {
	for _, icon := range f.Icons {
		inputs = append(inputs, icon.Input)
		out := icon.Output
		if out == "" {
			out = overlay.DeriveOutputs([]string{icon.Input}, suffix)[0]
		}
		outputs = append(outputs, out)
	}
	return inputs, outputs
}

// RenderStyle converts the style section.
func (f File) RenderStyle() render.Style {
	return render.Style{
		BannerColor:  f.Style.BannerColor,
		TextColor:    f.Style.TextColor,
		Opacity:      f.Style.Opacity,
		Position:     render.Position(strings.ToLower(strings.TrimSpace(f.Style.Position))),
		TextInset:    f.Style.TextInset,
		FontFallback: f.Style.FontFallback,
	}
}
