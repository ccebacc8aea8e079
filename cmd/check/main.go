package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/Fakhri17/schedule-uts/internal/app"
	"github.com/Fakhri17/schedule-uts/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := app.NewLogger(cfg.Env)
	defer log.Sync()

	if err := app.Check(cfg, log); err != nil {
		log.Error("check failed", zap.Error(err))
		os.Exit(1)
	}
}
