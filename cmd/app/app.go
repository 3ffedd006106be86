package main

import (
	"os"

	"github.com/thriftysouq/go-backend/internal/app"
	config "github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	app.Run(cfg, log)
}
