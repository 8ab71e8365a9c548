package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/peterkuimelis/pokesim/internal/session"
	"github.com/peterkuimelis/pokesim/internal/web"
	"github.com/rs/zerolog"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	teamsFile := flag.String("teams", "teams.yaml", "path to teams YAML file")
	timeout := flag.Duration("timeout", 5*time.Minute, "forfeit a player who takes longer than this to choose (0 disables)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	manager := session.NewManager(session.Options{Timeout: *timeout, Log: logger})
	defer manager.Shutdown()
	srv := web.NewServer(*teamsFile, manager, logger)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info().Msgf("pokesim web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
