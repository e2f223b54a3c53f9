package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zeebo/clingy"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is shared by commands; it is built on first use unless a test
// has already set it.
var logger *zap.Logger

func main() {
	ctx := context.Background()

	ok, err := clingy.Environment{
		Name: "karmasub",
		Args: os.Args[1:],
	}.Run(ctx, func(cmds clingy.Commands) {
		cmds.New("sub", "subtract two integers", new(cmdSub))
	})
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if !ok || err != nil {
		os.Exit(1)
	}
}

func initLogger(verbose bool) error {
	if logger != nil {
		return nil
	}
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
