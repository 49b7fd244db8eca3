package cmd

import (
	"fmt"

	"flutter-gen-builder/core/config"
	"flutter-gen-builder/core/logger"
	"flutter-gen-builder/feature/packages"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// packagesCmd represents the packages command
var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Maintain the package manifest",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// packagesUpdateCmd represents the packages update command
var packagesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rewrite package manifest entries",
	Long: `Rewrites the persisted package manifest according to the configured update
targets: every entry ("all"), a named subset, or named packages with explicit
root paths ("app=.,shared=../shared"). Entries stay sorted by name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		targets, err := packages.ParseUpdateTargets(cfg.Packages.Update)
		if err != nil {
			return fmt.Errorf("invalid update targets: %w", err)
		}

		manifest, err := packages.Load(cfg.Packages.ManifestPath)
		if err != nil {
			return fmt.Errorf("failed to load package manifest: %w", err)
		}

		updated := 0
		switch targets.Mode {
		case packages.UpdateAll:
			manifest.Normalize()
			updated = len(manifest.Packages)
		case packages.UpdateNamed:
			for _, name := range targets.Names {
				entry, ok := manifest.Lookup(name)
				if !ok {
					logg.Warn("package not present in manifest, skipping", zap.String("package", name))
					continue
				}
				manifest.Update(name, entry.RootURI)
				updated++
			}
		case packages.UpdatePaths:
			for name, path := range targets.Paths {
				manifest.Update(name, path)
				updated++
			}
		}

		if err := manifest.Save(cfg.Packages.ManifestPath); err != nil {
			return fmt.Errorf("failed to save package manifest: %w", err)
		}

		logg.Info("package manifest updated",
			zap.String("manifest", cfg.Packages.ManifestPath),
			zap.String("mode", string(targets.Mode)),
			zap.Int("updated", updated))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(packagesCmd)
	packagesCmd.AddCommand(packagesUpdateCmd)
}
