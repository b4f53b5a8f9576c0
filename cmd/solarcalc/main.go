package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/divyakansara2385/solarcalc/internal/api"
	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/session"
)

type config struct {
	Port       string        `help:"HTTP server port." default:"8080" env:"PORT"`
	SessionTTL time.Duration `help:"Idle lifetime of a browser session." default:"2h" env:"SESSION_TTL"`
	Seed       int64         `help:"Fixed generator seed for reproducible datasets (0 uses a time-based source)." default:"0" env:"SEED"`
}

var cli config

func main() {
	kong.Parse(&cli,
		kong.Name("solarcalc"),
		kong.Description("Synthetic daily solar production dashboard."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	gen := dataset.New()
	if cli.Seed != 0 {
		log.Printf("using fixed seed %d", cli.Seed)
		gen = dataset.NewSeeded(cli.Seed)
	}

	sessions := session.NewStore(cli.SessionTTL)
	server := api.NewServer(sessions, gen, cli.Port)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go sessions.Run(ctx)

	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
