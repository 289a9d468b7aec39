// Package picker holds the language search and selection state shared by
// the onboarding screen and the language switcher.
package picker

import (
	"strings"

	"github.com/samber/lo"

	"health-chat/pkg"
)

// Filter returns the options whose display name, native name or code
// contains query, ignoring case and surrounding whitespace.  A blank query
// returns options unchanged.  Order is preserved.
func Filter(options []pkg.LanguageOption, query string) []pkg.LanguageOption {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return options
	}
	return lo.Filter(options, func(o pkg.LanguageOption, _ int) bool {
		return lo.SomeBy([]string{o.Name, o.NativeName, o.Code}, func(s string) bool {
			return strings.Contains(strings.ToLower(s), q)
		})
	})
}

// Picker is a single-valued language selection over a fixed option list.
type Picker struct {
	options  []pkg.LanguageOption
	query    string
	selected string
}

// NewOnboarding returns the picker shown before the conversation starts,
// pre-selected with the default language.
func NewOnboarding(options []pkg.LanguageOption, defaultCode string) *Picker {
	p := &Picker{options: options}
	p.Select(defaultCode)
	return p
}

// NewSwitcher returns the picker of the language switcher, pre-selected
// with the active language.
func NewSwitcher(options []pkg.LanguageOption, current string) *Picker {
	p := &Picker{options: options}
	p.Select(current)
	return p
}

// SetQuery changes the search text.  The selection is kept even if the
// selected option is filtered out.
func (p *Picker) SetQuery(q string) { p.query = q }

// Query returns the search text.
func (p *Picker) Query() string { return p.query }

// Visible returns the options matching the current query.
func (p *Picker) Visible() []pkg.LanguageOption { return Filter(p.options, p.query) }

// Select replaces the selection.  Codes that are not options are ignored
// and reported as false.
func (p *Picker) Select(code string) bool {
	if !lo.ContainsBy(p.options, func(o pkg.LanguageOption) bool { return o.Code == code }) {
		return false
	}
	p.selected = code
	return true
}

// Selected returns the selected code, empty when nothing is selected.
func (p *Picker) Selected() string { return p.selected }

// IsSelected reports whether code is the current selection.
func (p *Picker) IsSelected(code string) bool { return p.selected != "" && p.selected == code }

// CanSubmit reports whether the start or apply action is enabled.
func (p *Picker) CanSubmit() bool { return p.selected != "" }

// Common returns the options for the given quick-pick codes, in the order
// of codes, skipping codes that are not options.
func (p *Picker) Common(codes []string) []pkg.LanguageOption {
	return lo.FilterMap(codes, func(code string, _ int) (pkg.LanguageOption, bool) {
		return lo.Find(p.options, func(o pkg.LanguageOption) bool { return o.Code == code })
	})
}
