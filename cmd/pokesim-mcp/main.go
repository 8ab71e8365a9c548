package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	pokemcp "github.com/peterkuimelis/pokesim/internal/mcp"
	"github.com/peterkuimelis/pokesim/internal/session"
	"github.com/rs/zerolog"
)

func main() {
	teams := flag.String("teams", "teams.yaml", "path to teams YAML file")
	timeout := flag.Duration("timeout", 0, "forfeit the player after this long without a choice (0 disables)")
	flag.Parse()

	// stdout carries the MCP stream, so logs go to stderr.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	manager := session.NewManager(session.Options{Timeout: *timeout, Log: logger})
	defer manager.Shutdown()

	s := server.NewMCPServer("pokesim", "1.0.0")
	pokemcp.RegisterTools(s, pokemcp.NewTools(*teams, manager))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
