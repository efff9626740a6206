package main

import (
	"log/slog"
	"strings"

	"slicer/internal/config"
	"slicer/internal/logging"
	"slicer/internal/toolrunner"
)

// commandContext lazily loads configuration and wiring shared by every
// subcommand. Tests pre-populate the fields directly.
type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	cfg    *config.Config
	logger *slog.Logger
	runner toolrunner.Runner
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	path := ""
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
	}
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(*c.logFormatFlag))
	}

	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

func (c *commandContext) toolRunner() toolrunner.Runner {
	if c.runner == nil {
		c.runner = toolrunner.New()
	}
	return c.runner
}
