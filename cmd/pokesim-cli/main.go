package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/log"
	pokenet "github.com/peterkuimelis/pokesim/internal/net"
	"github.com/rs/zerolog"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "sim":
		run(runSim(os.Args[2:]))
	case "host":
		run(runHost(os.Args[2:]))
	case "join":
		run(runJoin(os.Args[2:]))
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  pokesim sim  [--gen G] [--p1 TEAM] [--p2 TEAM] [--seed N] [--mods LIST] [--teams FILE]")
	fmt.Println("  pokesim host [--team N] [--port P] [--teams FILE] [--timeout D]")
	fmt.Println("  pokesim join [--team N] [--addr ADDR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sim     Play two teams against each other with built-in controllers")
	fmt.Println("  host    Start a battle server and play as Player 1")
	fmt.Println("  join    Connect to a battle server and play as Player 2")
}

func run(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func controllerFor(kind string, seed int64) (game.Controller, error) {
	switch kind {
	case "first":
		return game.FirstLegal{}, nil
	case "random":
		return game.NewRandomController(seed), nil
	}
	return nil, fmt.Errorf("unknown controller %q (want first or random)", kind)
}

func runSim(args []string) error {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	teamsFile := fs.String("teams", "teams.yaml", "path to teams file")
	gen := fs.Int("gen", 0, "pick the first team of this generation when --p1 is not given")
	p1 := fs.String("p1", "", "player 1 team name (default: first team)")
	p2 := fs.String("p2", "", "player 2 team name (default: second team of the same generation)")
	seed := fs.Int64("seed", 0, "battle seed (0 picks one from the clock)")
	mods := fs.String("mods", "", "comma-separated house rules")
	ctl1 := fs.String("c1", "random", "player 1 controller: first or random")
	ctl2 := fs.String("c2", "random", "player 2 controller: first or random")
	maxTurns := fs.Int("max-turns", game.DefaultMaxTurns, "give up after this many turns")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	fs.Parse(args)

	logger := newLogger(*verbose)

	tf, err := game.LoadTeams(*teamsFile)
	if err != nil {
		return err
	}
	if len(tf.Teams) == 0 {
		return errors.New("no teams in " + *teamsFile)
	}
	first := tf.Teams[0]
	if *gen != 0 {
		pool := tf.ForGen(*gen)
		if len(pool) == 0 {
			return fmt.Errorf("no teams for generation %d", *gen)
		}
		first = pool[0]
	}
	if *p1 != "" {
		var ok bool
		if first, ok = tf.Find(*p1); !ok {
			return fmt.Errorf("unknown team %q", *p1)
		}
	}
	var second game.TeamEntry
	if *p2 != "" {
		var ok bool
		if second, ok = tf.Find(*p2); !ok {
			return fmt.Errorf("unknown team %q", *p2)
		}
	} else {
		for _, t := range tf.ForGen(first.Gen) {
			if t.Name != first.Name {
				second = t
				break
			}
		}
		if second.Name == "" {
			return fmt.Errorf("no second team for generation %d", first.Gen)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	c1, err := controllerFor(*ctl1, *seed+1)
	if err != nil {
		return err
	}
	c2, err := controllerFor(*ctl2, *seed+2)
	if err != nil {
		return err
	}

	b, _, err := game.Start(game.Config{
		Gen:    first.Gen,
		Mods:   []string{*mods},
		Seed:   *seed,
		P1:     game.PlayerConfig{ID: "p1", Name: first.Name, Team: first.Pokemon},
		P2:     game.PlayerConfig{ID: "p2", Name: second.Name, Team: second.Pokemon},
		Logger: log.NewTextLogger(os.Stdout),
		Log:    &logger,
	})
	if err != nil {
		return err
	}
	logger.Info().Int64("seed", *seed).Int("gen", first.Gen).Msg("battle started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return game.Run(ctx, b, c1, c2, *maxTurns, nil)
}

func runHost(args []string) error {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	team := fs.Int("team", 1, "team number to use (from teams.yaml)")
	port := fs.String("port", "9000", "TCP port to listen on")
	teamsFile := fs.String("teams", "teams.yaml", "path to teams file")
	name := fs.String("name", "Host", "your trainer name")
	seed := fs.Int64("seed", 0, "battle seed (0 derives one from the room id)")
	mods := fs.String("mods", "", "comma-separated house rules")
	timeout := fs.Duration("timeout", 0, "forfeit a player who takes longer than this to choose (0 disables)")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	fs.Parse(args)

	srv := &pokenet.Server{
		TeamFile: *teamsFile,
		Port:     *port,
		HostTeam: *team,
		HostName: *name,
		Mods:     []string{*mods},
		Seed:     *seed,
		Timeout:  *timeout,
		Log:      newLogger(*verbose),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return srv.Run(ctx)
}

func runJoin(args []string) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	team := fs.Int("team", 2, "team number to use (from teams.yaml)")
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	name := fs.String("name", "Challenger", "your trainer name")
	fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return pokenet.Connect(ctx, *addr, *team, *name, os.Stdin, os.Stdout)
}
