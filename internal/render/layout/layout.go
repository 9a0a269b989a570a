package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// InsetX shrinks rect by paddingPx on the left and right.
// The result never has negative width; an over-inset rect collapses to its center.
func InsetX(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	if 2*paddingPx >= rect.Dx() {
		mid := rect.Min.X + rect.Dx()/2
		return image.Rect(mid, rect.Min.Y, mid, rect.Max.Y)
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y, rect.Max.X-paddingPx, rect.Max.Y)
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// AnchorTop returns the full-width strip of heightPx at the top of rect.
func AnchorTop(rect image.Rectangle, heightPx int) image.Rectangle {
	top, _ := SplitHorizontal(rect, heightPx)
	return top
}

// AnchorBottom returns the full-width strip of heightPx at the bottom of rect.
// heightPx is clamped to rect's height.
func AnchorBottom(rect image.Rectangle, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if heightPx > rect.Dy() {
		heightPx = rect.Dy()
	}
	if heightPx < 0 {
		heightPx = 0
	}
	_, bottom := SplitHorizontal(rect, rect.Dy()-heightPx)
	return bottom
}

// CenterIn returns a (widthPx, heightPx) rectangle centered in rect.
// It may extend past rect when the requested size is larger.
func CenterIn(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}
