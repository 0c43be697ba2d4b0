package pipeline

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"pixkit/pkg/proto"
)

func New(ops proto.PixelOps, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		ops: ops,
		log: logger,
	}
}

// Pipeline applies the transformations of a Request in a fixed order: blur,
// brighten, crop, rotate, invert, grayscale. The first failing stage aborts
// the run.
type Pipeline struct {
	ops proto.PixelOps
	log *zap.Logger
}

func (p *Pipeline) Apply(img image.Image, req Request) (image.Image, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	for _, s := range Stages(p.ops, req) {
		log := p.log.With(zap.String("stage", s.Name()))
		if d := describe(req, s.Name()); d != "" {
			log = log.With(zap.String("args", d))
		}

		if s.Name() == StageRotate && !Rotates(*req.Rotate) {
			log.Debug("rotation angle is not a quarter turn, skipped")
		}

		start := time.Now()
		out, err := s.Apply(img)
		if err != nil {
			return nil, fmt.Errorf("%s stage failed: %w", s.Name(), err)
		}
		img = out

		log.With(
			zap.Duration("cost", time.Since(start)),
			zap.Int("w", img.Bounds().Dx()),
			zap.Int("h", img.Bounds().Dy()),
		).Debug("applied")
	}

	return img, nil
}
