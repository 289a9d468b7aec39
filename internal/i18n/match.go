package i18n

import (
	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
	"golang.org/x/text/language"

	"health-chat/pkg"
)

// The default language comes first so that a failed match falls back to it.
var matcher = language.NewMatcher(lo.Map(options, func(o pkg.LanguageOption, _ int) language.Tag {
	return language.MustParse(o.Code)
}))

// Match picks the best offered language for an Accept-Language header.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(options) {
		return DefaultLanguage
	}
	return options[idx].Code
}

// Detect guesses the language of a user message.  It only answers when the
// detection is reliable and the language is one of the offered options.
func Detect(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", false
	}
	code := info.Lang.Iso6391()
	if !IsKnown(code) {
		return "", false
	}
	return code, true
}
