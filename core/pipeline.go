package core

import (
	"context"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
)

// Pipeline runs the normalize, filter, scale and render stages.
type Pipeline struct {
	Renderer *Renderer
}

// NewPipeline creates a pipeline drawing into the default container.
func NewPipeline() *Pipeline {
	return &Pipeline{Renderer: NewRenderer()}
}

// Prepare normalizes and filters raw records for params.
func (p *Pipeline) Prepare(raws []schema.RawRecord, params schema.FilterParams) []schema.House {
	return Filter(Normalize(raws), params)
}

// Build runs every stage and draws the result onto surface.
func (p *Pipeline) Build(ctx context.Context, raws []schema.RawRecord, params schema.FilterParams, surface contract.Surface) (*Chart, error) {
	houses := p.Prepare(raws, params)
	scales := BuildScales(houses, params.MaxPrice)
	return p.Renderer.Render(ctx, houses, scales, surface)
}
