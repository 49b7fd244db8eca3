package translations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocale(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		ok       bool
	}{
		{"LanguageOnly", "app_en.arb", "en", true},
		{"RegionQualified", "app_de_DE.arb", "de_DE", true},
		{"VariantPrefix", "app2_en.arb", "en", true},
		{"OtherExtension", "strings_fr.json", "fr", true},
		{"NoLocale", "app.arb", "", false},
		{"PrefixWithUnderscore", "my_app_en.arb", "", false},
		{"ThreeLetterLanguage", "app_eng.arb", "", false},
		{"UppercaseLanguage", "app_EN.arb", "", false},
		{"LowercaseRegion", "app_de_de.arb", "", false},
		{"MissingExtension", "app_en", "", false},
		{"MissingPrefix", "_en.arb", "", false},
		{"UnrelatedFile", "README.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLocale(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocaleMatches(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		target    string
		want      bool
	}{
		{"Exact", "en", "en", true},
		{"ExactRegion", "de_DE", "de_DE", true},
		{"RegionSatisfiesLanguage", "de_DE", "de", true},
		{"LanguageDoesNotSatisfyRegion", "de", "de_DE", false},
		{"DifferentLanguage", "fr", "de", false},
		{"DifferentLanguageRegion", "fr_FR", "de", false},
		{"DifferentRegionSameLanguage", "de_AT", "de", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocaleMatches(tt.candidate, tt.target))
		})
	}
}
