package generator

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Config holds configuration for the external code generator.
type Config struct {
	// Command is the executable to invoke.
	Command string `mapstructure:"command" default:"flutter"`
	// Args are the arguments passed to Command, space-separated.
	Args string `mapstructure:"args" default:"gen-l10n"`
	// ConfigFile is the generator's tool configuration file, relative to
	// WorkDir.
	ConfigFile string `mapstructure:"config_file" default:"l10n.yaml"`
	// WorkDir is the project directory the generator runs in.
	WorkDir string `mapstructure:"work_dir" default:"."`
}

// ConfigPath returns the tool configuration file resolved against WorkDir,
// since the generator itself reads ConfigFile relative to its working
// directory. An absolute ConfigFile is returned as-is.
func (c *Config) ConfigPath() string {
	if filepath.IsAbs(c.ConfigFile) {
		return c.ConfigFile
	}
	return filepath.Join(c.WorkDir, c.ConfigFile)
}

// Runner invokes the external localization code generator.
type Runner struct {
	cfg    *Config
	logger *zap.Logger
}

// NewRunner creates a new generator runner.
func NewRunner(cfg *Config, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logger,
	}
}

// Generate runs the generator once. A nonzero exit or unlaunchable command is
// reported as degraded output and is not fatal: the caller proceeds with
// whatever generated output already exists. Only context cancellation
// propagates as an error.
func (r *Runner) Generate(ctx context.Context) error {
	args := strings.Fields(r.cfg.Args)
	cmd := exec.CommandContext(ctx, r.cfg.Command, args...)
	cmd.Dir = r.cfg.WorkDir

	r.logger.Info("running code generator",
		zap.String("command", r.cfg.Command),
		zap.Strings("args", args),
		zap.String("dir", r.cfg.WorkDir))

	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		r.logger.Warn("code generator failed, continuing with existing output",
			zap.String("command", r.cfg.Command),
			zap.ByteString("output", out),
			zap.Error(err))
		return nil
	}

	r.logger.Debug("code generator finished", zap.ByteString("output", out))
	return nil
}
