package translations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedLocales(t *testing.T) {
	base := map[string]string{"en": "base/app_en.arb", "de": "base/app_de.arb"}
	extension := map[string]string{"en": "ext/app2_en.arb", "fr": "ext/app2_fr.arb"}

	assert.Equal(t, []string{"de", "en", "fr"}, SupportedLocales(base, extension))
	assert.Empty(t, SupportedLocales(nil, map[string]string{}))
}

func TestResolve(t *testing.T) {
	index := map[string]string{
		"en":    "app_en.arb",
		"de_AT": "app_de_AT.arb",
		"de_DE": "app_de_DE.arb",
		"fr_FR": "app_fr_FR.arb",
	}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"ExactMatch", "en", "app_en.arb"},
		{"ExactRegionMatch", "de_DE", "app_de_DE.arb"},
		{"LanguageFallsBackToRegion", "fr", "app_fr_FR.arb"},
		{"FallbackIsDeterministicFirstSorted", "de", "app_de_AT.arb"},
		{"RegionNeverFallsBackToLanguage", "en_US", ""},
		{"NoMatch", "pt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(index, tt.target))
		})
	}
}

func TestPlan(t *testing.T) {
	base := map[string]string{"en": "base/app_en.arb", "de": "base/app_de.arb"}
	extension := map[string]string{"en_US": "ext/app2_en_US.arb"}

	plans := Plan([]string{"de", "en"}, base, extension)

	assert.Equal(t, []LocalePlan{
		{Locale: "de", BaseFile: "base/app_de.arb", ExtensionFile: ""},
		{Locale: "en", BaseFile: "base/app_en.arb", ExtensionFile: "ext/app2_en_US.arb"},
	}, plans)
}
