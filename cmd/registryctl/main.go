package main

import (
	"os"

	"profiling-server/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}
