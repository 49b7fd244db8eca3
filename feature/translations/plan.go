package translations

import "sort"

// LocalePlan pairs the resolved base and extension source files for one
// locale. Either path may be empty when that side has no matching file.
type LocalePlan struct {
	Locale        string
	BaseFile      string
	ExtensionFile string
}

// SupportedLocales returns the union of locales across the given indices,
// sorted. The build supports every locale either source tree provides.
func SupportedLocales(indices ...map[string]string) []string {
	set := make(map[string]struct{})
	for _, index := range indices {
		for locale := range index {
			set[locale] = struct{}{}
		}
	}
	locales := make([]string, 0, len(set))
	for locale := range set {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Resolve finds the source file for target in index. An exact locale match
// wins; otherwise, for language-only targets, the first region-qualified
// match over the sorted index keys is used ("de" falls back to "de_DE").
// Returns the empty string when nothing matches.
func Resolve(index map[string]string, target string) string {
	if path, ok := index[target]; ok {
		return path
	}
	keys := make([]string, 0, len(index))
	for locale := range index {
		keys = append(keys, locale)
	}
	sort.Strings(keys)
	for _, locale := range keys {
		if LocaleMatches(locale, target) {
			return index[locale]
		}
	}
	return ""
}

// Plan resolves the base and extension source files for every supported
// locale.
func Plan(supported []string, baseIndex, extensionIndex map[string]string) []LocalePlan {
	plans := make([]LocalePlan, 0, len(supported))
	for _, locale := range supported {
		plans = append(plans, LocalePlan{
			Locale:        locale,
			BaseFile:      Resolve(baseIndex, locale),
			ExtensionFile: Resolve(extensionIndex, locale),
		})
	}
	return plans
}
