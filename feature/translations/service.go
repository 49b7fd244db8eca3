package translations

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Mode records how a merge invocation resolved.
type Mode string

const (
	// ModeMerge combines base and extension documents per locale.
	ModeMerge Mode = "merge"
	// ModeCopy relocates a single source's files without merging.
	ModeCopy Mode = "copy"
	// ModeSkip means nothing was done (configuration error or no locales).
	ModeSkip Mode = "skip"
)

// LocaleFailure records one locale whose merge failed. Failures are isolated:
// the remaining locales are still processed.
type LocaleFailure struct {
	Locale string `json:"locale"`
	Error  string `json:"error"`
}

// Report summarizes one merge invocation.
type Report struct {
	// Mode is how the invocation resolved.
	Mode Mode `json:"mode"`
	// Locales is the supported locale set, sorted.
	Locales []string `json:"locales"`
	// Merged counts locales with a merged output file written.
	Merged int `json:"merged"`
	// Copied counts locales whose source file was relocated verbatim.
	Copied int `json:"copied"`
	// NewKeys counts extension keys absent from the base, across locales.
	NewKeys int `json:"new_keys"`
	// OverriddenKeys counts base keys the extension replaced, across locales.
	OverriddenKeys int `json:"overridden_keys"`
	// Warnings lists non-fatal conditions (missing sources, empty results).
	Warnings []string `json:"warnings,omitempty"`
	// Failed lists locales whose merge failed.
	Failed []LocaleFailure `json:"failed,omitempty"`
}

// Bootstrapper regenerates a base app's localization output when it is found
// missing before planning. Implemented by the generator runner; a nil
// Bootstrapper disables the recovery step.
type Bootstrapper interface {
	Generate(ctx context.Context) error
}

// Service runs the translation merge step for one build invocation. It is
// single-threaded and holds no state across invocations; every Run operates
// on a fresh snapshot of the filesystem.
type Service struct {
	cfg       *Config
	logger    *zap.Logger
	bootstrap Bootstrapper
}

// NewService creates a new merge service.
func NewService(cfg *Config, logger *zap.Logger, bootstrap Bootstrapper) *Service {
	return &Service{
		cfg:       cfg,
		logger:    logger,
		bootstrap: bootstrap,
	}
}

// Run executes the merge step. Configuration problems, unreadable source
// directories and empty locale sets skip or degrade the step with a reported
// warning; they never fail the surrounding build. Only per-locale parse and
// write failures are recorded, and those are isolated in the Report.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	report := &Report{Mode: ModeSkip}

	if s.cfg.Path == "" {
		s.logger.Error("translations path is not configured, skipping merge step")
		report.Warnings = append(report.Warnings, "translations path is not configured")
		return report, nil
	}

	basePath := s.cfg.ResolvedBasePath()
	if basePath != "" {
		s.ensureBaseOutput(ctx, basePath)
	}

	baseIndex := map[string]string{}
	if basePath != "" {
		var err error
		if baseIndex, err = IndexByLocale(basePath); err != nil {
			s.logger.Warn("failed to scan base resources, proceeding without base layer",
				zap.String("base_path", basePath),
				zap.Error(err))
			report.Warnings = append(report.Warnings, err.Error())
			baseIndex = map[string]string{}
		}
	}
	extensionIndex, err := IndexByLocale(s.cfg.Path)
	if err != nil {
		s.logger.Error("failed to scan translations path, skipping merge step",
			zap.String("path", s.cfg.Path),
			zap.Error(err))
		report.Warnings = append(report.Warnings, err.Error())
		return report, nil
	}

	supported := SupportedLocales(baseIndex, extensionIndex)
	report.Locales = supported
	if len(supported) == 0 {
		s.logger.Warn("no resource files found in any source directory, nothing to merge",
			zap.String("path", s.cfg.Path),
			zap.String("base_path", basePath))
		report.Warnings = append(report.Warnings, "no resource files found")
		return report, nil
	}

	// With only one side contributing files there is nothing to merge and no
	// @@context marker to synthesize: relocate that side's files verbatim.
	if s.cfg.BaseApp == "" {
		s.runCopy(report, extensionIndex, supported, true)
		return report, nil
	}
	if len(extensionIndex) == 0 {
		s.runCopy(report, baseIndex, supported, false)
		return report, nil
	}

	s.runMerge(report, baseIndex, extensionIndex, supported)
	return report, nil
}

// ensureBaseOutput checks that the base app's resource output exists and
// triggers regeneration when it does not. Failure to regenerate is degraded,
// not fatal: the merge proceeds with whatever the base contributes.
func (s *Service) ensureBaseOutput(ctx context.Context, basePath string) {
	if _, err := os.Stat(basePath); !os.IsNotExist(err) {
		return
	}
	s.logger.Warn("base app resources missing, regenerating",
		zap.String("base_app", s.cfg.BaseApp),
		zap.String("base_path", basePath))
	if s.bootstrap == nil {
		return
	}
	if err := s.bootstrap.Generate(ctx); err != nil {
		s.logger.Warn("base app regeneration failed, proceeding without base resources",
			zap.String("base_app", s.cfg.BaseApp),
			zap.Error(err))
	}
}

func (s *Service) runMerge(report *Report, baseIndex, extensionIndex map[string]string, supported []string) {
	report.Mode = ModeMerge

	for _, plan := range Plan(supported, baseIndex, extensionIndex) {
		logg := s.logger.With(zap.String("locale", plan.Locale))

		if plan.BaseFile == "" && plan.ExtensionFile == "" {
			logg.Warn("no resource file found for supported locale")
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("locale %s: no resource file found", plan.Locale))
			continue
		}
		if plan.BaseFile == "" {
			logg.Warn("no base resource file for locale, extension only")
		}
		if plan.ExtensionFile == "" {
			logg.Warn("no extension resource file for locale, base only")
		}

		merged, stats, err := MergeFiles(plan.BaseFile, plan.ExtensionFile)
		if err != nil {
			logg.Error("locale merge failed", zap.Error(err))
			report.Failed = append(report.Failed, LocaleFailure{
				Locale: plan.Locale,
				Error:  err.Error(),
			})
			continue
		}
		if merged == nil {
			logg.Warn("merge produced no translatable keys, skipping output")
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("locale %s: merge produced no translatable keys", plan.Locale))
			continue
		}

		name := OutputName(plan.BaseFile, plan.ExtensionFile, plan.Locale)
		path, err := WriteDocument(merged, s.cfg.OutputDir, name)
		if err != nil {
			logg.Error("failed to write merged document", zap.Error(err))
			report.Failed = append(report.Failed, LocaleFailure{
				Locale: plan.Locale,
				Error:  err.Error(),
			})
			continue
		}

		report.Merged++
		report.NewKeys += len(stats.NewKeys)
		report.OverriddenKeys += len(stats.OverriddenKeys)
		logg.Info("merged locale resources",
			zap.String("output", path),
			zap.Int("new_keys", len(stats.NewKeys)),
			zap.Int("overridden_keys", len(stats.OverriddenKeys)))
	}
}

// runCopy relocates one index's files verbatim. fromExtension selects the
// filename policy: extension filenames get their project prefix rewritten,
// base filenames are kept as they are.
func (s *Service) runCopy(report *Report, index map[string]string, supported []string, fromExtension bool) {
	report.Mode = ModeCopy

	for _, locale := range supported {
		logg := s.logger.With(zap.String("locale", locale))

		src := Resolve(index, locale)
		if src == "" {
			logg.Warn("no resource file found for supported locale")
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("locale %s: no resource file found", locale))
			continue
		}

		var name string
		if fromExtension {
			name = OutputName("", src, locale)
		} else {
			name = OutputName(src, "", locale)
		}
		path, err := CopyResource(src, s.cfg.OutputDir, name)
		if err != nil {
			logg.Error("failed to copy resource file", zap.Error(err))
			report.Failed = append(report.Failed, LocaleFailure{
				Locale: locale,
				Error:  err.Error(),
			})
			continue
		}

		report.Copied++
		logg.Info("copied locale resources", zap.String("output", path))
	}
}
