package client

import (
	"fmt"
	"strings"
)

// Locale selects the regional ShopStyle API host.
type Locale string

const (
	US Locale = "US"
	UK Locale = "UK"
	DE Locale = "DE"
	FR Locale = "FR"
	JP Locale = "JP"
	AU Locale = "AU"
	CA Locale = "CA"
)

// DefaultLocale is used when no locale is configured and as the fallback for
// unrecognised values.
const DefaultLocale = US

var localeHosts = map[Locale]string{
	US: "api.shopstyle.com",
	UK: "api.shopstyle.co.uk",
	DE: "api.shopstyle.de",
	FR: "api.shopstyle.fr",
	JP: "api.shopstyle.co.jp",
	AU: "api.shopstyle.com.au",
	CA: "api.shopstyle.ca",
}

// Locales lists every supported locale.
func Locales() []Locale {
	return []Locale{US, UK, DE, FR, JP, AU, CA}
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	_, ok := localeHosts[l]
	return ok
}

// Host returns the API host for l. Unknown locales resolve to the US host.
func (l Locale) Host() string {
	if h, ok := localeHosts[l]; ok {
		return h
	}
	return localeHosts[DefaultLocale]
}

// ParseLocale validates s case-insensitively. An empty string yields
// DefaultLocale.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLocale, nil
	}
	l := Locale(strings.ToUpper(s))
	if !l.Valid() {
		return "", fmt.Errorf("unsupported locale %q", s)
	}
	return l, nil
}
