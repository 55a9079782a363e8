package main

import (
	"context"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/term"

	"layerfx/pkg/pipeline"
)

func main() {
	logger, _ := zap.NewDevelopment()

	cfg, layers, err := pipeline.Build(os.Args[1:])
	if err != nil {
		logger.Fatal("parse failed", zap.Error(err))
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(logger, cfg, layers),
		fx.Provide(
			func() afero.Fs { return afero.NewOsFs() },
			func() *resty.Client { return resty.New() },
			newExecutor,
		),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}

	_ = logger.Sync()
}

func newExecutor(fs afero.Fs, client *resty.Client, logger *zap.Logger) *pipeline.Executor {
	opts := []pipeline.Option{
		pipeline.WithFs(fs),
		pipeline.WithHTTPClient(client),
		pipeline.WithLogger(logger),
		pipeline.WithStdio(os.Stdin, os.Stdout),
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		opts = append(opts, pipeline.WithProgress(os.Stderr))
	}

	return pipeline.NewExecutor(opts...)
}

func run(exec *pipeline.Executor, cfg *pipeline.Config, layers []*pipeline.Layer) error {
	return exec.Run(context.Background(), cfg, layers)
}
