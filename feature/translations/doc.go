// Package translations implements the translation merge engine.
//
// An app's localized strings live in ARB resource files, one per locale
// (app_en.arb, app_de.arb, app_de_DE.arb). A derived app variant can layer an
// "extension" set of resource files on top of a "base" app's set; this package
// produces one merged, deterministic output file per supported locale.
//
// # Pipeline
//
//   - IndexByLocale scans a source directory and maps locale -> file path.
//   - SupportedLocales takes the union of locales across base and extension.
//   - Plan resolves, per locale, the base and extension source files using the
//     region-to-language fallback rule (app_de_DE.arb satisfies locale "de").
//   - MergeFiles overlays the extension document on the base document with
//     extension precedence and stamps the @@context marker.
//   - WriteDocument persists the result with stable key ordering.
//
// Service ties the pipeline together for one build invocation: sequential
// per-locale processing, per-locale failure isolation, and a Report summary.
//
// When the extension side contributes no resource files at all, the step
// degenerates to a pure byte-for-byte copy of the single remaining source and
// no @@context marker is synthesized.
package translations
