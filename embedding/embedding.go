// Package embedding turns tab titles into embedding vectors. The pipeline
// itself never produces embeddings; it consumes what an Embedder returns.
package embedding

import (
	"context"
	"fmt"

	"github.com/hupe1980/tabgroup/model"
)

// Embedder produces one embedding vector per input text, in input order.
type Embedder interface {
	// EmbedBatch embeds the given texts. The result has one vector per
	// text and all vectors share a dimensionality.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName identifies the producing model, recorded on each embedding.
	ModelName() string
}

// EmbedTabs embeds each tab's name and pairs the vectors with their tab ids.
func EmbedTabs(ctx context.Context, embedder Embedder, tabs []model.Tab) ([]model.Embedding, error) {
	if len(tabs) == 0 {
		return nil, nil
	}

	texts := make([]string, len(tabs))
	for i, tab := range tabs {
		texts[i] = tab.Name
	}

	vecs, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed tabs: %w", err)
	}
	if len(vecs) != len(tabs) {
		return nil, fmt.Errorf("embed tabs: got %d vectors for %d tabs", len(vecs), len(tabs))
	}

	embeddings := make([]model.Embedding, len(tabs))
	for i, tab := range tabs {
		embeddings[i] = model.Embedding{
			TabID:     tab.ID,
			Vector:    vecs[i],
			ModelName: embedder.ModelName(),
		}
	}
	return embeddings, nil
}
