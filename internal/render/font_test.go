package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/iconbanner/internal/assets"
	"github.com/rook-computer/iconbanner/internal/errors"
)

func TestResolveFont(t *testing.T) {
	label, data, err := resolveFont("")
	require.NoError(t, err)
	assert.Equal(t, assets.DefaultFont, label)
	assert.NotEmpty(t, data)

	label, _, err = resolveFont("go-mono")
	require.NoError(t, err)
	assert.Equal(t, "go-mono", label)

	_, _, err = resolveFont("Helvetica-Bold")
	assert.Equal(t, errors.ErrCodeRender, errors.CodeOf(err))
}

func TestParseFontRejectsGarbage(t *testing.T) {
	_, err := parseFont("junk", []byte("not a font"))
	assert.Equal(t, errors.ErrCodeRender, errors.CodeOf(err))
}

func TestFitTextShrinksToWidth(t *testing.T) {
	label, data, err := resolveFont("go-bold")
	require.NoError(t, err)
	src, err := parseFont(label, data)
	require.NoError(t, err)

	wide, err := src.fitText("BETA", 20, 1000)
	require.NoError(t, err)
	assert.Equal(t, 20.0, wide.size)

	narrow, err := src.fitText("BETA", 20, 30)
	require.NoError(t, err)
	assert.Less(t, narrow.size, 20.0)
	assert.LessOrEqual(t, narrow.width, 30)
}

func TestBasicFontSourceDraws(t *testing.T) {
	src := basicFontSource()
	layout, err := src.fitText("DEV", 40, 10)
	require.NoError(t, err)
	assert.Greater(t, layout.width, 0)

	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	layout.baseline = image.Pt(1, 1+layout.ascent)
	require.NoError(t, src.drawText(dst, "DEV", layout, color.White))

	var lit int
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if dst.RGBAAt(x, y).A > 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)
}
