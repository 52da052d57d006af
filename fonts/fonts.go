// Package fonts provisions the built-in typefaces used by the compositor.
// The Go fonts ship as library bytes, so the module carries no font assets
// of its own.
package fonts

import (
	"fmt"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Regular returns the TTF bytes of the built-in regular face.
func Regular() []byte { return goregular.TTF }

// Bold returns the TTF bytes of the built-in bold face.
func Bold() []byte { return gobold.TTF }

// Family loads the built-in faces into a fresh canvas font family. Each call
// returns an independent family; callers cache it for the lifetime of a
// compositor.
func Family() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("promoforge")
	if err := family.LoadFont(Regular(), 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load regular face: %w", err)
	}
	if err := family.LoadFont(Bold(), 0, canvas.FontBold); err != nil {
		return nil, fmt.Errorf("load bold face: %w", err)
	}
	return family, nil
}
