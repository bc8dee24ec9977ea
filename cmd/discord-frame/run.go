package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	discordframe "github.com/stagekit/discord-frame"
	"github.com/stagekit/discord-frame/app"
	"github.com/stagekit/discord-frame/discord"
	"github.com/stagekit/discord-frame/errors"
)

type runConfig struct {
	ClientID  int64  `env:"DISCORD_CLIENT_ID"`
	FrameRate int    `env:"DISCORD_FRAME_RATE" envDefault:"60"`
	SDKPath   string `env:"DISCORD_SDK_PATH"`
}

func newRunCommand() *cobra.Command {
	var (
		clientID  int64
		frameRate int
		sdkPath   string
		noRequire bool
		headless  bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the frame loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg runConfig
			if err := env.Parse(&cfg); err != nil {
				return errors.Internal(errors.OpConfig, "parse environment", err)
			}

			// Flags win over environment.
			if clientID != 0 {
				cfg.ClientID = clientID
			}
			if frameRate != 0 {
				cfg.FrameRate = frameRate
			}
			if sdkPath != "" {
				cfg.SDKPath = sdkPath
			}

			if cfg.ClientID == 0 {
				return fmt.Errorf("client ID required (--client-id or DISCORD_CLIENT_ID)")
			}

			return run(cfg, noRequire, headless, verbose)
		},
	}

	cmd.Flags().Int64Var(&clientID, "client-id", 0, "Discord application client ID")
	cmd.Flags().IntVar(&frameRate, "fps", 0, "Frames per second (default 60)")
	cmd.Flags().StringVar(&sdkPath, "sdk", "", "Explicit path to the Discord Game SDK library")
	cmd.Flags().BoolVar(&noRequire, "no-require-discord", false, "Succeed even if Discord is not running")
	cmd.Flags().BoolVar(&headless, "headless", false, "Disable the status TUI")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}

func run(cfg runConfig, noRequire, headless, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	app.SetLogger(logger)

	a := app.New(app.WithFrameRate(cfg.FrameRate), app.WithLogger(logger)).
		AddPlugins(discordframe.Plugin{
			ID:      discord.ClientID(cfg.ClientID),
			Connect: connector(cfg, noRequire),
		}).
		AddStartupSystems(hookSDKLogs(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !headless && term.IsTerminal(int(os.Stdout.Fd())) {
		return runTUI(ctx, a, cfg.FrameRate)
	}

	logger.Info("frame loop starting",
		zap.Int64("client_id", cfg.ClientID),
		zap.Int("fps", cfg.FrameRate))
	return a.Run(ctx)
}

// connector builds the client constructor for the configured SDK location
// and create flags.
func connector(cfg runConfig, noRequire bool) func(discord.ClientID) (*discord.Client, error) {
	var opts []discord.Option
	if cfg.SDKPath != "" {
		opts = append(opts, discord.WithLibraryPath(cfg.SDKPath))
	}
	if noRequire {
		opts = append(opts, discord.WithCreateFlags(discord.CreateNoRequireDiscord))
	}
	if len(opts) == 0 {
		return nil // plugin default
	}
	return func(id discord.ClientID) (*discord.Client, error) {
		return discord.New(id, opts...)
	}
}

// hookSDKLogs routes the SDK's own log output through zap once the client
// exists. Runs at startup, after plugin builds.
func hookSDKLogs(logger *zap.Logger) app.System {
	return func(f *app.Frame) error {
		if client, ok := app.NonSend[*discord.Client](f); ok {
			client.SetLogHook(discord.LogInfo, discord.ZapHook(logger))
		}
		return nil
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
