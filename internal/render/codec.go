package render

import (
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rook-computer/iconbanner/internal/errors"
)

// decodeFile reads an icon in any registered format (png, jpeg, gif, bmp, tiff, webp).
func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.WrapWithContext(errors.ErrCodeIO, "opening input", err, map[string]any{"path": path})
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", errors.WrapWithContext(errors.ErrCodeIO, "decoding input", err, map[string]any{"path": path})
	}
	return img, format, nil
}

// encodeFile writes img in the format implied by path's extension, PNG by
// default, creating parent directories as needed.
func encodeFile(path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithContext(errors.ErrCodeIO, "creating output directory", err, map[string]any{"path": dir})
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "creating output", err, map[string]any{"path": path})
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapWithContext(errors.ErrCodeIO, "closing output", cerr, map[string]any{"path": path})
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "encoding output", err, map[string]any{"path": path})
	}
	return nil
}
