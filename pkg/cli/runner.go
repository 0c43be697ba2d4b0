package cli

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"pixkit/pkg/generate"
	"pixkit/pkg/pipeline"
	"pixkit/pkg/proto"
)

// Mode is the kind of work a command asks for.
type Mode int

const (
	ModeTransform Mode = iota
	ModeFractal
	ModeGenerate
)

func (m Mode) String() string {
	switch m {
	case ModeTransform:
		return "transform"
	case ModeFractal:
		return "fractal"
	case ModeGenerate:
		return "generate"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Job is one run of the tool. In and Request are only used by ModeTransform.
type Job struct {
	Mode    Mode
	In      string
	Out     string
	Request pipeline.Request
}

func NewRunner(env Env, cfg Config, codec proto.Codec, p *pipeline.Pipeline, logger *zap.Logger) *Runner {
	return &Runner{
		env:      env,
		cfg:      cfg,
		codec:    codec,
		pipeline: p,
		log:      logger,
	}
}

type Runner struct {
	env      Env
	cfg      Config
	codec    proto.Codec
	pipeline *pipeline.Pipeline
	log      *zap.Logger
}

func (r *Runner) Run(job Job) error {
	log := r.log.With(zap.Stringer("mode", job.Mode), zap.String("out", job.Out))

	var img image.Image
	switch job.Mode {
	case ModeTransform:
		src, err := r.codec.Load(job.In)
		if err != nil {
			return fmt.Errorf("load input failed: %w", err)
		}

		log = log.With(zap.String("in", job.In), zap.Strings("plan", pipeline.Plan(job.Request)))
		if job.Request.Empty() {
			log.Info("no transformation requested, image is written as loaded")
		}
		if img, err = r.pipeline.Apply(src, job.Request); err != nil {
			return fmt.Errorf("transform failed: %w", err)
		}
	case ModeFractal, ModeGenerate:
		m, err := generate.ParseMode(job.Mode.String())
		if err != nil {
			return err
		}
		img = m.Generate(r.generateOptions()...)
	default:
		return fmt.Errorf("%w: unknown mode %s", proto.ErrUsage, job.Mode)
	}

	if r.cfg.DryRun {
		log.With(
			zap.Int("w", img.Bounds().Dx()),
			zap.Int("h", img.Bounds().Dy()),
		).Info("dry run, output not written")
		return nil
	}

	if err := r.codec.Save(img, job.Out); err != nil {
		return fmt.Errorf("save output failed: %w", err)
	}

	log.Debug("done")
	return nil
}

func (r *Runner) generateOptions() []generate.Option {
	opts := []generate.Option{generate.WithSize(r.cfg.Size, r.cfg.Size)}
	if r.cfg.Progress {
		opts = append(opts, generate.WithProgress(r.env.Stderr))
	}
	return opts
}
