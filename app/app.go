package app

import (
	"context"
	"io"
	"os"

	"github.com/purl-cli/purl/config"
	"github.com/purl-cli/purl/internal/client"
	"github.com/purl-cli/purl/internal/render"
	"github.com/purl-cli/purl/internal/request"
	"github.com/purl-cli/purl/util/conf"
	"github.com/purl-cli/purl/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// App assembles and runs the parse → dispatch → render pipeline for
// one invocation.
type App struct {
	log     *zap.Logger
	options []fx.Option
}

func New(ctx *cli.Context) (*App, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// rename logger for the pipeline
		logging.DecorateLogger("pipeline"),
		// provide global config
		fx.Supply(cfg),
		// provide transport config
		fx.Supply(cfg.Client),
		// provide output config
		fx.Supply(cfg.Render),
		// provide the pipeline components
		fx.Provide(client.NewHTTPClient),
		fx.Provide(client.NewDispatcher),
		fx.Provide(render.NewHighlighter),
		fx.Provide(render.NewRenderer),
	)

	return &App{
		log:     log,
		options: []fx.Option{sharedModule},
	}, nil
}

// Run performs the single request described by desc and renders the
// response to stdout. It returns the first pipeline error.
func (a *App) Run(ctx context.Context, desc *request.Descriptor) error {
	var runErr error

	fxApp := fx.New(
		// inject global execution context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// inject the logger
		fx.Supply(a.log),

		// rendered output goes to stdout
		fx.Supply(fx.Annotate(os.Stdout, fx.As(new(io.Writer)))),

		// use the logger also for fx' logs
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: a.log.Named("fx")}
		}),

		fx.Options(a.options...),

		// run the pipeline once; no lifecycle hooks are needed for a
		// one-shot invocation
		fx.Invoke(func(dispatcher *client.Dispatcher, renderer *render.Renderer) {
			runErr = runPipeline(ctx, dispatcher, renderer, desc)
		}),
	)

	if err := fxApp.Err(); err != nil {
		return err
	}

	return runErr
}

func runPipeline(ctx context.Context, dispatcher *client.Dispatcher, renderer *render.Renderer, desc *request.Descriptor) error {
	resp, err := dispatcher.Do(ctx, desc)
	if err != nil {
		return err
	}

	return renderer.Render(resp)
}
