package translations

import (
	"regexp"
	"strings"
)

// localePattern matches resource filenames of the shape <prefix>_<lang>.<ext>
// or <prefix>_<lang>_<REGION>.<ext>. The prefix must not contain an
// underscore, the language is exactly two lowercase letters and the optional
// region exactly two uppercase letters.
var localePattern = regexp.MustCompile(`^[^_]+_([a-z]{2})(?:_([A-Z]{2}))?\.[^.]+$`)

// ExtractLocale parses the locale identifier out of a resource filename.
// It returns false for filenames that do not follow the naming grammar;
// source directories may contain unrelated files, so this is not an error.
func ExtractLocale(filename string) (string, bool) {
	m := localePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	if m[2] != "" {
		return m[1] + "_" + m[2], true
	}
	return m[1], true
}

// LocaleMatches reports whether candidate satisfies target. Identical locales
// always match. A region-qualified candidate satisfies a language-only target
// of the same language ("de_DE" matches "de"); the fallback is asymmetric, a
// language-only candidate never satisfies a region-qualified target.
func LocaleMatches(candidate, target string) bool {
	if candidate == target {
		return true
	}
	return len(target) == 2 && strings.HasPrefix(candidate, target+"_")
}
