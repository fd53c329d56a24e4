package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/console"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/transport/rest"
	"github.com/rocketscienceinc/gomoku/internal/transport/websocket"
)

// main - console client. Flags override the client section of the config file.
func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	mode := flag.String("mode", "", "local or remote")
	role := flag.String("role", "", "X or O, remote mode only")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if *mode != "" {
		conf.Client.Mode = *mode
	}
	if *role != "" {
		conf.Client.Role = *role
	}

	// the terminal belongs to the board, logs go to a file
	logFile, err := os.OpenFile(conf.Client.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: config.ParseLogLevel(conf.LogLevel)}))

	if err = run(logger, conf); err != nil {
		logger.Error("client failed", "error", err)
		fmt.Fprintf(os.Stderr, "client failed: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	settings := gomoku.Settings{
		Mode:           entity.Mode(conf.Client.Mode),
		BoardSize:      conf.BoardSize,
		HumanMark:      entity.Mark(conf.Client.Role),
		RequestTimeout: conf.Client.RequestTimeout,
	}

	var (
		moves gomoku.MoveService
		feed  *websocket.Feed
	)

	if settings.Mode == entity.ModeAssistedRemote {
		moves = rest.NewClient(conf.Client.ServiceURL, &http.Client{})
		feed = websocket.NewFeed(logger, conf.Client.FeedURL)
	}

	controller, err := gomoku.NewController(logger, moves, settings)
	if err != nil {
		return fmt.Errorf("failed to create match controller: %w", err)
	}

	// a nil *Feed must not reach the driver as a non-nil interface
	var driver *console.Driver
	if feed != nil {
		driver = console.NewDriver(logger, controller, feed)
	} else {
		driver = console.NewDriver(logger, controller, nil)
	}

	return driver.Run(ctx)
}
