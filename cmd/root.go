package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/purl-cli/purl/config"
	"github.com/purl-cli/purl/internal/client"
	"github.com/purl-cli/purl/internal/render"
	"github.com/purl-cli/purl/internal/request"
	"github.com/purl-cli/purl/util/conf"
	"github.com/purl-cli/purl/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Exit codes per error kind. Malformed input, transport failures and
// rendering failures are distinguishable from scripts.
const (
	exitUsage     = 2
	exitTransport = 3
	exitRender    = 4
)

var (
	appName  = "purl"
	appUsage = `A command-line HTTP client that issues a single GET or POST
request and renders the response with content-type-aware
syntax coloring.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "set the log level. Options: debug, info, warn, error, panic, fatal.",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "set the log format. Options: production, development.",
			},
			// request flags
			&cli.IntFlag{
				Name:     "timeout",
				Usage:    "the request timeout in seconds. 0 waits indefinitely.",
				Aliases:  []string{"t"},
				Value:    30,
				Category: "request",
			},
			// output flags
			&cli.StringFlag{
				Name:     "theme",
				Usage:    "the highlight theme to use for colored bodies.",
				Value:    "monokai",
				Category: "output",
			},
			&cli.BoolFlag{
				Name:     "no-color",
				Usage:    "disable all terminal coloring.",
				Category: "output",
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := createLogger(ctx)
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// parse config from defaults and cli flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli: ctx,
				CliMap: map[string]string{
					"timeout":  "client.timeout",
					"theme":    "render.theme",
					"no-color": "render.no_color",
				},
				Defaults: config.DefaultConfig,
				Log:      log,
			})
			if err != nil {
				return err
			}

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "%s: %s\n", appName, err.Error())

	os.Exit(exitCode(err))
}

// exitCode maps an error to its exit code. Anything outside the known
// taxonomy exits 1.
func exitCode(err error) int {
	switch {
	case request.IsUsageError(err):
		return exitUsage
	case client.IsTransportError(err):
		return exitTransport
	case render.IsRenderError(err):
		return exitRender
	}

	return 1
}

func createLogger(ctx *cli.Context) (*zap.Logger, error) {
	level := getLogLevelFromCLI(ctx)
	format := getLogFormatFromCLI(ctx)

	var config zap.Config
	if format == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	config.InitialFields = map[string]any{
		"app": appName,
	}

	config.Level = level

	return config.Build()
}

func getLogFormatFromCLI(ctx *cli.Context) string {
	format := ctx.String("log-format")
	if format != "" {
		return format
	}

	return "production"
}

func getLogLevelFromCLI(ctx *cli.Context) zap.AtomicLevel {
	lvl := ctx.String("log-level")

	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	// rendered output must stay clean for piping, so logs are
	// error-only unless asked for
	return zap.NewAtomicLevelAt(zap.ErrorLevel)
}
