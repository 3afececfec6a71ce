package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/limaJavier/unitime/internal/config"
	"github.com/limaJavier/unitime/internal/logging"
	"github.com/limaJavier/unitime/internal/server"
	"github.com/limaJavier/unitime/pkg/model"
)

func main() {
	configPathPtr := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		logging.Configure(logging.Config{Level: "info"})
		log.Fatal().Err(err).Msg("cannot load configuration")
	}

	logging.Configure(logging.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
		Output: os.Stderr,
	})

	router := server.NewRouter(cfg, model.NewGreedyScheduler())

	address := ":" + cfg.Server.Port
	log.Info().Str("address", address).Str("mode", cfg.Server.Mode).Msg("starting timetable server")
	if err := router.Run(address); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
