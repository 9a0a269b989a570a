// Package assets exposes the fonts compiled into the binary.
//
// The Go font family from golang.org/x/image ships as TrueType byte slices,
// so every built-in font can be drawn by freetype directly.
package assets

import (
	"sort"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// DefaultFont is used when no font name is configured.
const DefaultFont = "go-bold"

var builtin = map[string][]byte{
	"go-regular":   goregular.TTF,
	"go-bold":      gobold.TTF,
	"go-medium":    gomedium.TTF,
	"go-italic":    goitalic.TTF,
	"go-mono":      gomono.TTF,
	"go-mono-bold": gomonobold.TTF,
	"go-smallcaps": gosmallcaps.TTF,
}

// Lookup returns the TTF bytes of a built-in font.
func Lookup(name string) ([]byte, bool) {
	data, ok := builtin[name]
	return data, ok
}

// Names returns the sorted built-in font names.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
