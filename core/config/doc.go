// Package config provides configuration management for the builder.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Translations: source directories, base app, output directory
//   - Generator: external code generator command and tool configuration
//   - Packages: package manifest path and update targeting
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Translations.Path)
package config
