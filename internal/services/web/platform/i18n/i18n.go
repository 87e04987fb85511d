// Package i18n resolves the copy catalog printer for a request.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dailyharvest/storefront/internal/platform/i18n/catalog"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var matcher = newMatcher(catalog.Default())

func newMatcher(bundle *catalog.Bundle) language.Matcher {
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range bundle.Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}
	return language.NewMatcher(tags)
}

// ResolveLocalizer picks the best catalog locale for the request's
// Accept-Language header and returns its printer with the chosen language
// tag. Unknown or missing preferences resolve to the base locale.
func ResolveLocalizer(r *http.Request) (*message.Printer, string) {
	accept := ""
	if r != nil {
		accept = r.Header.Get("Accept-Language")
	}
	tag, _ := language.MatchStrings(matcher, accept)
	base, _ := tag.Base()
	region, _ := tag.Region()
	resolved := language.MustParse(catalog.BaseLocale)
	if candidate, err := language.Compose(base, region); err == nil {
		resolved = candidate
	}
	return message.NewPrinter(resolved), base.String()
}
