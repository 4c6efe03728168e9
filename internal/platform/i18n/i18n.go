// Package i18n maps request language preferences onto the locales shipped in
// the embedded catalog.
package i18n

import (
	"github.com/louisbranch/iconhub/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	supportedTags = loadSupportedTags()
	tagMatcher    = language.NewMatcher(supportedTags)
)

// loadSupportedTags lists catalog locales with the base locale first so the
// matcher falls back to it.
func loadSupportedTags() []language.Tag {
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range catalog.Default().Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// SupportedTags returns the language tags with a shipped catalog.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// DefaultTag returns the base locale tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag accepts value when it names a supported tag or a language whose
// only supported region is unambiguous ("pt" resolves to "pt-BR").
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag == parsed {
			return tag, true
		}
	}
	base, _ := parsed.Base()
	var match language.Tag
	found := 0
	for _, tag := range supportedTags {
		if tagBase, _ := tag.Base(); tagBase == base {
			match = tag
			found++
		}
	}
	if found == 1 {
		return match, true
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// LocaleForTag returns the catalog locale name for tag.
func LocaleForTag(tag language.Tag) string {
	for _, supported := range supportedTags {
		if supported == tag {
			return supported.String()
		}
	}
	return MatchTags([]language.Tag{tag}).String()
}
