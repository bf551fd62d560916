/* main.go
 * The "main" method for running the sumo data app. It serves the web page and JSON API and, when enabled, the
 * discord bot, all driven by one controller.
 * Usage: go run . -addr=":8080" -discord="false"
 *        go run . -card    prints the current match to the terminal and exits
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"sumo-data/api/api"
	"sumo-data/api/store"
	"sumo-data/app"
	"sumo-data/bot"
	"sumo-data/config"
	"sumo-data/render"
	"sumo-data/web"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// options holds the command line flags. Empty strings leave the configured value alone
type options struct {
	envFile string
	addr    string
	discord string
	card    bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.envFile, "env", ".env", "Path to the .env file, missing files are skipped")
	flag.StringVar(&opts.addr, "addr", "", "Address for the web server, e.g. :8080. Overrides SERVER_ADDR")
	flag.StringVar(&opts.discord, "discord", "", "Run the discord bot: takes true or false as argument. Overrides DISCORD_ENABLED")
	flag.BoolVar(&opts.card, "card", false, "Print the current match to the terminal and exit")
	flag.Parse()

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(2)
	}
	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.card {
		err = printCard(ctx, cfg, logger, os.Stdout)
	} else {
		err = run(ctx, cfg, logger)
	}
	if err != nil {
		logger.WithError(err).Fatal("sumo data app stopped")
	}
}

// applyFlags overrides cfg with any flag that was set
// Preconditions: Receives the loaded config and the parsed flags
// Postconditions: cfg is updated in place. Returns an error if -discord is not a boolean or enables the bot without
// a token
func applyFlags(cfg *config.Config, opts options) error {
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.discord != "" {
		enabled, err := config.ConvertStrToBool(opts.discord)
		if err != nil {
			return fmt.Errorf("invalid \"discord\" flag: %w", err)
		}
		cfg.Discord.Enabled = enabled
	}
	if cfg.Discord.Enabled && cfg.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required when the discord bot is enabled")
	}
	return nil
}

// newController builds the store, API and controller shared by every frontend
func newController(cfg *config.Config, logger *logrus.Logger, notifier app.Notifier) (*app.Controller, error) {
	a, err := api.NewAPI(store.Config{
		Tournament: cfg.Tournament,
		Seed:       cfg.Seed,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize API: %w", err)
	}

	return app.NewController(a, notifier, app.Config{
		RefreshInterval:       cfg.Refresh.Interval,
		ManualRefreshCooldown: cfg.Refresh.ManualCooldown,
		Logger:                logger,
	}), nil
}

// printCard loads the day once and writes the current match as a terminal card
func printCard(ctx context.Context, cfg *config.Config, logger *logrus.Logger, out io.Writer) error {
	controller, err := newController(cfg, logger, nil)
	if err != nil {
		return err
	}
	if err := controller.Refresh(ctx); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, render.Terminal(controller.View()))
	return err
}

// run starts the refresh loop, the web server and the optional bot, and blocks until ctx is cancelled or one of
// them fails
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	hub := web.NewHub(logger)
	controller, err := newController(cfg, logger, hub)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(ctx)
		return nil
	})

	// A failed first load is shown on the page and retried by the refresh loop
	if err := controller.Start(ctx); err != nil {
		logger.WithError(err).Warn("starting without match data")
	}

	g.Go(func() error {
		return web.Start(ctx, web.Config{
			Addr:        cfg.Server.Addr,
			CORSOrigins: cfg.Server.CORSOrigins,
			Controller:  controller,
			Hub:         hub,
			Logger:      logger,
		})
	})

	if cfg.Discord.Enabled {
		discordBot, err := bot.NewBot(cfg.Discord.Token, controller, logger)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return discordBot.Run(ctx)
		})
	}

	return g.Wait()
}
