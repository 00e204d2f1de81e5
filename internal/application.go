package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/bot"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/terminal"
	"golang.org/x/exp/rand"
)

// RunApp - wires the services together and runs the console session.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Seed 0 means a fresh sequence each run; any other value makes the bot
	// reproducible.
	seed := conf.Bot.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	botService := bot.New(logger, rng, bot.Config{
		EasyIterations: conf.Bot.EasyIterations,
		HardIterations: conf.Bot.HardIterations,
		Exploration:    conf.Bot.Exploration,
	})
	gamePlayService := service.NewGamePlayService(logger, botService)

	server := terminal.New(logger, gamePlayService, os.Stdin, os.Stdout)

	log.Debug("Starting console session", "seed", seed)

	return server.Run(ctx)
}
