// Package i18n picks the display locale from user-supplied locale strings.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Supported lists the locales with translated messages. The first entry is
// the fallback.
var Supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

var matcher = language.NewMatcher(Supported)

// Default is the locale used when nothing better matches.
func Default() language.Tag {
	return Supported[0]
}

// Resolve maps raw onto the closest supported locale. raw may be a BCP 47 tag
// ("pt-BR"), a POSIX locale ("en_US.UTF-8") or an Accept-Language style list
// ("en;q=0.9, pt"). An empty value yields Default.
func Resolve(raw string) (language.Tag, error) {
	raw = normalizeLocale(raw)
	if raw == "" {
		return Default(), nil
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", raw, err)
	}
	if len(tags) == 0 {
		return Default(), nil
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default(), nil
	}
	return Supported[idx], nil
}

// normalizeLocale turns POSIX locale names into BCP 47 form.
func normalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 && !strings.Contains(raw, ",") {
		raw = raw[:i]
	}
	if raw == "C" || raw == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(raw, "_", "-")
}
