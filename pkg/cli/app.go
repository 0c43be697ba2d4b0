package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pixkit/pkg/codec"
	"pixkit/pkg/pipeline"
	"pixkit/pkg/pixel"
	"pixkit/pkg/pixel/virtual"
	"pixkit/pkg/proto"
)

// run wires the components for one invocation and executes job with them.
func run(env Env, cfg Config, job Job) error {
	var jobErr error

	app := fx.New(
		fx.NopLogger,
		fx.Supply(env, cfg),
		fx.Provide(
			newLogger,
			func(env Env) afero.Fs { return env.Fs },
			newCodec,
			newPixelOps,
			pipeline.New,
			NewRunner,
		),
		fx.Invoke(func(r *Runner, logger *zap.Logger) {
			jobErr = r.Run(job)
			_ = logger.Sync()
		}),
	)

	if err := app.Err(); err != nil {
		return err
	}
	return jobErr
}

func newLogger(env Env, cfg Config) *zap.Logger {
	level := lo.Ternary(cfg.Debug, zapcore.DebugLevel, zapcore.InfoLevel)
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(env.Stderr),
		level,
	)
	return zap.New(core)
}

func newCodec(fs afero.Fs, logger *zap.Logger, cfg Config) proto.Codec {
	return codec.New(fs, logger.Named("codec"),
		codec.WithJPEGQuality(cfg.Quality),
		codec.WithAutoOrientation(cfg.AutoOrient),
	)
}

func newPixelOps(logger *zap.Logger, cfg Config) proto.PixelOps {
	if cfg.DryRun {
		return virtual.New(logger.Named("dry-run"))
	}
	return pixel.New()
}
