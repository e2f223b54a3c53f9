package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/zeebo/clingy"
	"go.uber.org/zap"

	"github.com/loov/karmasub/config"
	"github.com/loov/karmasub/report"
)

type cmdSub struct {
	configPaths   []string
	inlineConfigs []string
	format        string
	verbose       bool
	a, b          string

	stdout io.Writer
}

func (c *cmdSub) Setup(params clingy.Parameters) {
	c.configPaths = params.Flag("config", "path to config file",
		[]string{config.DefaultPath},
		clingy.Repeated,
	).([]string)

	c.inlineConfigs = params.Flag("c", "inline CUE config",
		[]string{},
		clingy.Repeated,
	).([]string)

	c.format = params.Flag("format", "output format: text, json, markdown or auto; overrides config", "").(string)

	c.verbose = params.Flag("verbose", "enable debug logging", false,
		clingy.Boolean,
	).(bool)

	// Negative operands go after "--".
	c.a = params.Arg("a", "minuend").(string)
	c.b = params.Arg("b", "subtrahend").(string)
}

func (c *cmdSub) Execute(ctx context.Context) error {
	if err := initLogger(c.verbose); err != nil {
		return err
	}

	// workaround for clingy bug
	if len(c.configPaths) == 0 {
		c.configPaths = []string{config.DefaultPath}
	}

	cfg, err := config.Load(c.configPaths, c.inlineConfigs)
	if err != nil {
		return err
	}
	if c.format != "" {
		cfg.Format = c.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger.Debug("loaded config",
		zap.Strings("paths", c.configPaths),
		zap.Int("width", cfg.Width),
		zap.Bool("signed", cfg.Signed),
		zap.String("format", cfg.Format))

	r, err := report.Compute(*cfg, c.a, c.b)
	if err != nil {
		return err
	}
	if r.Wrapped {
		logger.Warn("difference wrapped around",
			zap.String("a", r.A),
			zap.String("b", r.B),
			zap.Int("width", r.Width))
	}

	stdout := c.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return report.Write(stdout, r, resolveFormat(cfg.Format, stdout))
}

// resolveFormat turns "auto" into markdown for terminals and text otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "markdown"
	}
	return "text"
}
