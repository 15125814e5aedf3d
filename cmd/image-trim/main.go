package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/ironsheep/image-trim/internal/config"
	"github.com/ironsheep/image-trim/internal/imaging"
	"github.com/ironsheep/image-trim/internal/logging"
	"github.com/ironsheep/image-trim/internal/trim"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Process exit codes, one per failure class.
const (
	exitOK           = 0
	exitFailure      = 1
	exitNotFound     = 2
	exitDecode       = 3
	exitEmptyContent = 4
	exitWrite        = 5
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "image-trim"
	app.Usage = "crop transparent margins off an image and save it as WebP"
	app.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	app.Writer = stdout

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Usage: "path of the image to trim",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "path the trimmed WebP image is written to",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
		cli.StringFlag{
			Name:  "env-file",
			Usage: "dotenv file read before the environment",
			Value: ".env",
		},
	}

	app.Action = func(c *cli.Context) error {
		cfg, err := config.Load(c.String("env-file"))
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("failed to load configuration: %v", err), exitFailure)
		}
		if c.IsSet("input") {
			cfg.Input = c.String("input")
		}
		if c.IsSet("output") {
			cfg.Output = c.String("output")
		}
		if c.IsSet("log-level") {
			cfg.LogLevel = c.String("log-level")
		}

		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return cli.NewExitError(err.Error(), exitFailure)
		}
		defer logger.Sync()

		if cfg.EnvFile != "" {
			logger.Debug("Loaded env file", zap.String("path", cfg.EnvFile))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if code := run(ctx, cfg, c.App.Writer, logger); code != exitOK {
			return cli.NewExitError("", code)
		}
		return nil
	}

	return app
}

// run trims cfg.Input into cfg.Output, prints the outcome to stdout and
// returns the process exit code.
func run(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *zap.Logger) int {
	t := trim.New(imaging.NewWebPEncoder(), logger)

	res, err := t.Trim(ctx, cfg.Input, cfg.Output)
	if err != nil {
		logger.Error("Trim failed", zap.String("input", cfg.Input), zap.Error(err))
		trim.PrintError(stdout, cfg.Input, err)
		return exitCode(err)
	}

	trim.PrintResult(stdout, res)
	return exitOK
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, trim.ErrNotFound):
		return exitNotFound
	case errors.Is(err, trim.ErrDecode):
		return exitDecode
	case errors.Is(err, trim.ErrEmptyContent):
		return exitEmptyContent
	case errors.Is(err, trim.ErrWrite):
		return exitWrite
	}
	return exitFailure
}
