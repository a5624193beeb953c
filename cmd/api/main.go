package main

import (
	"os"

	"github.com/yigit/jobtracker/internal/pkg/logger"
)

// @title Mars Colony Job Tracker API
// @version 1.0
// @description Jobs, colonists and hazard categories of the colony
// @BasePath /api

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
