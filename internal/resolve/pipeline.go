package resolve

import (
	"context"

	"github.com/arogyamitra/arogya-bot/internal/chunk"
	"github.com/arogyamitra/arogya-bot/internal/translate"
)

// Pipeline is the full round trip for one inbound message: translate to the
// pivot language, resolve, translate back, chunk.
type Pipeline struct {
	translator   *translate.Wrapper
	orchestrator *Orchestrator
	chunkBound   int
}

func NewPipeline(translator *translate.Wrapper, orchestrator *Orchestrator, chunkBound int) *Pipeline {
	return &Pipeline{
		translator:   translator,
		orchestrator: orchestrator,
		chunkBound:   chunkBound,
	}
}

// Answer resolves an inbound message into ordered, size-bounded reply parts.
func (p *Pipeline) Answer(ctx context.Context, text string) []string {
	english, detectedLang := p.translator.Forward(ctx, text)

	reply := p.orchestrator.Resolve(ctx, english)

	final := p.translator.Backward(ctx, reply, detectedLang)

	return chunk.Split(final, p.chunkBound)
}
