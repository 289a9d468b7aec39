package picker

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-chat/internal/i18n"
	"health-chat/pkg"
)

func codes(opts []pkg.LanguageOption) []string {
	return lo.Map(opts, func(o pkg.LanguageOption, _ int) string { return o.Code })
}

func Test_Filter_Blank_Query_Returns_All(t *testing.T) {
	opts := i18n.Options()
	for _, q := range []string{"", " ", "\t\n"} {
		assert.Equal(t, opts, Filter(opts, q))
	}
}

func Test_Filter_Matches_Name_Native_And_Code(t *testing.T) {
	opts := i18n.Options()
	assert.Equal(t, []string{"es"}, codes(Filter(opts, "spanish")))
	assert.Equal(t, []string{"es"}, codes(Filter(opts, "ESPAÑOL")))
	assert.Equal(t, []string{"zh"}, codes(Filter(opts, "中文")))
	assert.Equal(t, []string{"ar"}, codes(Filter(opts, "  AR ")))
	assert.Empty(t, Filter(opts, "klingon"))
}

func Test_Filter_Preserves_Order_And_Contains_Query(t *testing.T) {
	opts := i18n.Options()
	for _, q := range []string{"e", "an", "u", "r", "h", "ç"} {
		got := Filter(opts, q)
		idx := -1
		for _, o := range got {
			i := lo.IndexOf(codes(opts), o.Code)
			require.Greater(t, i, idx, "order broken for query %q", q)
			idx = i
			lq := strings.ToLower(q)
			require.True(t,
				strings.Contains(strings.ToLower(o.Name), lq) ||
					strings.Contains(strings.ToLower(o.NativeName), lq) ||
					strings.Contains(strings.ToLower(o.Code), lq),
				"%s does not contain %q", o.Code, q)
		}
	}
}

func Test_Onboarding_Preselects_Default(t *testing.T) {
	p := NewOnboarding(i18n.Options(), "fr")
	assert.Equal(t, "fr", p.Selected())
	assert.True(t, p.CanSubmit())
}

func Test_Onboarding_Without_Selection_Cannot_Submit(t *testing.T) {
	p := NewOnboarding(i18n.Options(), "")
	assert.False(t, p.CanSubmit())
	assert.False(t, p.Select("xx"))
	assert.False(t, p.CanSubmit())
	assert.True(t, p.Select("hi"))
	assert.True(t, p.CanSubmit())
}

func Test_Select_Replaces_Prior_Selection(t *testing.T) {
	p := NewSwitcher(i18n.Options(), "en")
	require.True(t, p.IsSelected("en"))
	p.Select("ar")
	assert.True(t, p.IsSelected("ar"))
	assert.False(t, p.IsSelected("en"))
}

func Test_Selection_Survives_Query(t *testing.T) {
	p := NewSwitcher(i18n.Options(), "ru")
	p.SetQuery("span")
	assert.Equal(t, []string{"es"}, codes(p.Visible()))
	assert.Equal(t, "ru", p.Selected())
	assert.Equal(t, "span", p.Query())
}

func Test_Common_Skips_Unknown_Codes(t *testing.T) {
	p := NewOnboarding(i18n.Options(), "en")
	assert.Equal(t, []string{"en", "ar"}, codes(p.Common([]string{"en", "xx", "ar"})))
}
