package i18n

import (
	"github.com/samber/lo"

	"health-chat/pkg"
)

// DefaultLanguage is used whenever a code is unknown.
const DefaultLanguage = "en"

// options is the static list of languages offered to the user, in display
// order.  The Direction field is the only source of text direction.
var options = []pkg.LanguageOption{
	{Code: "en", Name: "English", NativeName: "English", Direction: pkg.LTR},
	{Code: "es", Name: "Spanish", NativeName: "Español", Direction: pkg.LTR},
	{Code: "fr", Name: "French", NativeName: "Français", Direction: pkg.LTR},
	{Code: "pt", Name: "Portuguese", NativeName: "Português", Direction: pkg.LTR},
	{Code: "ru", Name: "Russian", NativeName: "Русский", Direction: pkg.LTR},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Direction: pkg.RTL},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Direction: pkg.LTR},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Direction: pkg.LTR},
	{Code: "fa", Name: "Persian", NativeName: "فارسی", Direction: pkg.RTL},
	{Code: "he", Name: "Hebrew", NativeName: "עברית", Direction: pkg.RTL},
	{Code: "ur", Name: "Urdu", NativeName: "اردو", Direction: pkg.RTL},
}

// commonCodes are offered as quick picks above the full list.
var commonCodes = []string{"en", "es", "fr", "ar", "hi", "zh", "pt", "ru"}

// Options returns a copy of the language list.
func Options() []pkg.LanguageOption {
	out := make([]pkg.LanguageOption, len(options))
	copy(out, options)
	return out
}

// CommonCodes returns the quick-pick language codes.
func CommonCodes() []string {
	out := make([]string, len(commonCodes))
	copy(out, commonCodes)
	return out
}

// Lookup returns the option for code.
func Lookup(code string) (pkg.LanguageOption, bool) {
	return lo.Find(options, func(o pkg.LanguageOption) bool { return o.Code == code })
}

// IsKnown reports whether code is one of the offered languages.
func IsKnown(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Normalize returns code if it is offered, the default language otherwise.
func Normalize(code string) string {
	if IsKnown(code) {
		return code
	}
	return DefaultLanguage
}

// TextDirectionFor returns the direction declared by the language option.
// Unknown codes are left-to-right.
func TextDirectionFor(code string) pkg.Direction {
	if o, ok := Lookup(code); ok {
		return o.Direction
	}
	return pkg.LTR
}

// DocumentFor returns the root page attributes for a language.
func DocumentFor(code string) pkg.Document {
	return pkg.Document{Lang: code, Dir: TextDirectionFor(code)}
}
