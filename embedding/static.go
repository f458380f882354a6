package embedding

import (
	"context"
	"hash/fnv"
	"math/rand"

	"github.com/hupe1980/tabgroup/distance"
)

// StaticEmbedder produces deterministic unit vectors derived from the text
// itself: identical texts yield identical vectors, similar prefixes do not.
// It needs no network and exists for tests and local development.
type StaticEmbedder struct {
	dim int
}

// NewStaticEmbedder creates a StaticEmbedder with the given dimensionality.
func NewStaticEmbedder(dim int) *StaticEmbedder {
	if dim < 2 {
		dim = 2
	}
	return &StaticEmbedder{dim: dim}
}

// ModelName implements Embedder.
func (e *StaticEmbedder) ModelName() string {
	return "static"
}

// EmbedBatch implements Embedder.
func (e *StaticEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = e.embed(text)
	}
	return out, nil
}

func (e *StaticEmbedder) embed(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	vec := make([]float32, e.dim)
	for i := range vec {
		vec[i] = float32(rng.NormFloat64())
	}
	if !distance.NormalizeL2InPlace(vec) {
		vec[0] = 1
	}
	return vec
}
