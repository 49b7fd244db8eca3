package cmd

import (
	"fmt"
	"path/filepath"

	"flutter-gen-builder/core/config"
	"flutter-gen-builder/core/logger"
	"flutter-gen-builder/feature/generator"
	"flutter-gen-builder/feature/packages"
	"flutter-gen-builder/feature/translations"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipGenerator bool
var skipManifest bool

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge translation resources and regenerate localization code",
	Long: `Merges the base app's ARB resources with this app's overrides into one
output file per supported locale, runs the localization code generator on the
merged output and refreshes this package's manifest entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logg = logg.With(zap.String("run_id", uuid.NewString()))

		// Regenerates the base app's output when the merge finds it missing.
		var bootstrap translations.Bootstrapper
		if cfg.Translations.BaseApp != "" {
			baseCfg := cfg.Generator
			baseCfg.WorkDir = filepath.Join("..", cfg.Translations.BaseApp)
			bootstrap = generator.NewRunner(&baseCfg,
				logg.With(zap.String("app", cfg.Translations.BaseApp)))
		}

		svc := translations.NewService(&cfg.Translations, logg, bootstrap)
		report, err := svc.Run(ctx)
		if err != nil {
			return fmt.Errorf("translation merge failed: %w", err)
		}

		logg.Info("translation merge finished",
			zap.String("mode", string(report.Mode)),
			zap.Strings("locales", report.Locales),
			zap.Int("merged", report.Merged),
			zap.Int("copied", report.Copied),
			zap.Int("new_keys", report.NewKeys),
			zap.Int("overridden_keys", report.OverriddenKeys),
			zap.Int("warnings", len(report.Warnings)),
			zap.Int("failed", len(report.Failed)))
		for _, f := range report.Failed {
			logg.Error("locale failed", zap.String("locale", f.Locale), zap.String("error", f.Error))
		}

		if report.Mode == translations.ModeSkip {
			return nil
		}

		if !skipGenerator {
			run := generator.NewRunner(&cfg.Generator, logg)
			generate := func() error { return run.Generate(ctx) }
			if cfg.Translations.OverrideArbDir {
				err = generator.OverrideArbDir(cfg.Generator.ConfigPath(), cfg.Translations.OutputDir, generate)
			} else {
				err = generate()
			}
			if err != nil {
				return fmt.Errorf("code generation failed: %w", err)
			}
		}

		if !skipManifest && cfg.Packages.Name != "" {
			manifest, err := packages.Load(cfg.Packages.ManifestPath)
			if err != nil {
				return fmt.Errorf("failed to load package manifest: %w", err)
			}
			manifest.Update(cfg.Packages.Name, ".")
			if err := manifest.Save(cfg.Packages.ManifestPath); err != nil {
				return fmt.Errorf("failed to save package manifest: %w", err)
			}
			logg.Info("package manifest updated",
				zap.String("package", cfg.Packages.Name),
				zap.String("manifest", cfg.Packages.ManifestPath))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().BoolVar(&skipGenerator, "skip-generator", false, "Skip the code generator invocation")
	mergeCmd.Flags().BoolVar(&skipManifest, "skip-manifest", false, "Skip the package manifest update")
}
