package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-chat/pkg"
)

func Test_Resolve_Unknown_Code_Falls_Back_To_Default(t *testing.T) {
	for _, code := range []string{"", "xx", "de", "EN", "hi", "zh-TW"} {
		assert.Equal(t, bundles[DefaultLanguage], Resolve(code), "code %q", code)
	}
}

func Test_Resolve_Known_Code(t *testing.T) {
	req := require.New(t)
	req.Equal("Comenzar", Resolve("es").Start)
	req.Equal("Puedo ayudar a entender síntomas, pero no es un diagnóstico médico.", Resolve("es").Disclaimer)
	req.Equal("إرسال", Resolve("ar").Send)
}

func Test_Every_Bundle_Is_Complete(t *testing.T) {
	for code, b := range bundles {
		for name, v := range map[string]string{
			"title": b.Title, "welcome": b.Welcome, "search": b.SearchLanguage,
			"start": b.Start, "emergency": b.Emergency, "placeholder": b.Placeholder,
			"send": b.Send, "assistant": b.AssistantName, "disclaimer": b.Disclaimer,
			"help": b.Help, "language": b.Language, "startOver": b.StartOver,
			"confirm": b.ConfirmStartOver, "cancel": b.Cancel, "apply": b.Apply,
		} {
			assert.NotEmpty(t, v, "%s.%s", code, name)
		}
		assert.True(t, IsKnown(code), "bundle %s has no language option", code)
	}
}

func Test_TextDirection_Comes_From_Options(t *testing.T) {
	req := require.New(t)
	req.Equal(pkg.RTL, TextDirectionFor("ar"))
	req.Equal(pkg.RTL, TextDirectionFor("he"))
	req.Equal(pkg.RTL, TextDirectionFor("fa"))
	req.Equal(pkg.RTL, TextDirectionFor("ur"))
	req.Equal(pkg.LTR, TextDirectionFor("en"))
	req.Equal(pkg.LTR, TextDirectionFor("zz"))
	for _, o := range Options() {
		req.Equal(o.Direction, TextDirectionFor(o.Code))
	}
}

func Test_Normalize(t *testing.T) {
	assert.Equal(t, "es", Normalize("es"))
	assert.Equal(t, DefaultLanguage, Normalize("klingon"))
	assert.Equal(t, DefaultLanguage, Normalize(""))
}

func Test_Options_Returns_Copy(t *testing.T) {
	opts := Options()
	opts[0].Code = "mutated"
	assert.Equal(t, "en", Options()[0].Code)
}

func Test_Common_Codes_Are_Offered(t *testing.T) {
	for _, code := range CommonCodes() {
		assert.True(t, IsKnown(code), code)
	}
}

func Test_Match_Accept_Language(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"es-ES,es;q=0.9,en;q=0.8", "es"},
		{"fr-CA", "fr"},
		{"pt-BR,pt;q=0.9", "pt"},
		{"ar-EG", "ar"},
		{"de-DE", "en"},
		{"not a header;;", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header))
		})
	}
}

func Test_Detect_Known_Language(t *testing.T) {
	code, ok := Detect("Tengo dolor de cabeza desde hace tres días y también un poco de fiebre por la noche")
	require.True(t, ok)
	assert.Equal(t, "es", code)
}

func Test_Detect_Ignores_Short_Text(t *testing.T) {
	_, ok := Detect("ok")
	assert.False(t, ok)
}

func Test_Help_Sections(t *testing.T) {
	sections := Help()
	require.Len(t, sections, 4)
	assert.Equal(t, "About", sections[0].Title)
	assert.Equal(t, "Emergency", sections[3].Title)
}

func Test_HasBundle(t *testing.T) {
	for _, code := range []string{"en", "es", "fr", "ar", "fa"} {
		assert.True(t, HasBundle(code), code)
	}
	assert.False(t, HasBundle("ur"))
	assert.False(t, HasBundle("xx"))
}
