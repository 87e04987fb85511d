// Package templates renders storefront pages. Views in *.templ files are
// compiled by templ into the matching *_templ.go files; the rest build markup
// directly through templ.ComponentFunc.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ generate

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer prints storefront copy by catalog key.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T prints key through loc. Without a localizer the key is used as the
// format string.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, _ := key.(string)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
