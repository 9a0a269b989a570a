package overlay

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/rook-computer/iconbanner/internal/errors"
)

// MaxDimension bounds every pixel length a configuration may ask for.
const MaxDimension = 16384

// Validate checks a configuration before it is handed to a renderer.
// Config never calls this itself.
//
// A fully zero Size is accepted and means "derive from the image"; a size
// with one zero, any negative dimension, a non-finite value or a dimension
// above MaxDimension is rejected.
func Validate(c *Config) error {
	if c == nil {
		return errors.New(errors.ErrCodeConfiguration, "no overlay configuration")
	}
	if len(c.inputFilenames) == 0 {
		return errors.New(errors.ErrCodeConfiguration, "no input files")
	}
	if len(c.inputFilenames) != len(c.outputFilenames) {
		return errors.NewWithContext(errors.ErrCodeConfiguration,
			fmt.Sprintf("%d input files but %d output files", len(c.inputFilenames), len(c.outputFilenames)),
			map[string]any{"inputs": len(c.inputFilenames), "outputs": len(c.outputFilenames)})
	}
	for _, p := range c.Pairs() {
		if strings.TrimSpace(p.Input) == "" || strings.TrimSpace(p.Output) == "" {
			return errors.NewWithContext(errors.ErrCodeConfiguration,
				fmt.Sprintf("empty path at position %d", p.Index), map[string]any{"index": p.Index})
		}
		if filepath.Clean(p.Input) == filepath.Clean(p.Output) {
			return errors.NewWithContext(errors.ErrCodeConfiguration,
				fmt.Sprintf("output would overwrite input %s", p.Input), map[string]any{"index": p.Index})
		}
	}
	if strings.TrimSpace(c.bannerText) == "" {
		return errors.New(errors.ErrCodeValidation, "banner text is empty")
	}
	if !finite(c.bannerHeight) || !finite(c.bannerHeightPadding) {
		return errors.New(errors.ErrCodeValidation,
			fmt.Sprintf("banner height and padding must be finite, got %g and %g", c.bannerHeight, c.bannerHeightPadding))
	}
	if c.bannerHeight <= 0 {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("banner height must be positive, got %g", c.bannerHeight))
	}
	if c.bannerHeightPadding < 0 {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("banner height padding must not be negative, got %g", c.bannerHeightPadding))
	}
	if c.bannerHeight+c.bannerHeightPadding > MaxDimension {
		return errors.New(errors.ErrCodeValidation,
			fmt.Sprintf("banner height plus padding must not exceed %d, got %g", MaxDimension, c.bannerHeight+c.bannerHeightPadding))
	}
	if err := validateSize("input image size", c.inputImageSize); err != nil {
		return err
	}
	return validateSize("banner size", c.bannerSize)
}

func validateSize(name string, s Size) error {
	if !finite(s.Width) || !finite(s.Height) {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("%s must be finite, got %gx%g", name, s.Width, s.Height))
	}
	if s.IsZero() {
		return nil
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("%s must be positive, got %gx%g", name, s.Width, s.Height))
	}
	if s.Width > MaxDimension || s.Height > MaxDimension {
		return errors.New(errors.ErrCodeValidation,
			fmt.Sprintf("%s must not exceed %dx%d, got %gx%g", name, MaxDimension, MaxDimension, s.Width, s.Height))
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
