package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/dectrig/internal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error("dectrig failed", "error", err)
		os.Exit(1)
	}
}
