package embedding

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultBatchSize bounds the number of texts sent per API call.
const DefaultBatchSize = 100

// OpenAIEmbedder embeds texts with the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client    openai.Client
	model     openai.EmbeddingModel
	batchSize int
}

// OpenAIOption configures an OpenAIEmbedder.
type OpenAIOption func(*OpenAIEmbedder)

// WithModel overrides the embedding model.
func WithModel(model openai.EmbeddingModel) OpenAIOption {
	return func(e *OpenAIEmbedder) {
		e.model = model
	}
}

// WithBatchSize overrides the per-call batch size.
func WithBatchSize(size int) OpenAIOption {
	return func(e *OpenAIEmbedder) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// NewOpenAIEmbedder creates an embedder using the given API key.
func NewOpenAIEmbedder(apiKey string, optFns ...OpenAIOption) *OpenAIEmbedder {
	e := &OpenAIEmbedder{
		client:    openai.NewClient(option.WithAPIKey(apiKey)),
		model:     openai.EmbeddingModelTextEmbedding3Small,
		batchSize: DefaultBatchSize,
	}
	for _, fn := range optFns {
		fn(e)
	}
	return e
}

// ModelName implements Embedder.
func (e *OpenAIEmbedder) ModelName() string {
	return string(e.model)
}

// EmbedBatch implements Embedder. Texts are chunked to the configured batch
// size and embedded in order.
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += e.batchSize {
		end := min(start+e.batchSize, len(texts))
		chunk := texts[start:end]

		resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
			Input: openai.EmbeddingNewParamsInputUnion{
				OfArrayOfStrings: chunk,
			},
			Model:          e.model,
			EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
		})
		if err != nil {
			return nil, fmt.Errorf("openai embeddings: %w", err)
		}
		if len(resp.Data) != len(chunk) {
			return nil, fmt.Errorf("openai embeddings: got %d vectors for %d texts", len(resp.Data), len(chunk))
		}

		for _, d := range resp.Data {
			vec := make([]float32, len(d.Embedding))
			for i, v := range d.Embedding {
				vec[i] = float32(v)
			}
			out = append(out, vec)
		}
	}

	return out, nil
}
