package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/apps/go-server/internal/httpserver"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid HTTP_TIMEOUT")
	}

	srv := httpserver.New(httpserver.WithTimeout(timeout))
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Dur("timeout", timeout).Msg("starting scoring server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
