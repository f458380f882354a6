package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgroup/distance"
	"github.com/hupe1980/tabgroup/model"
)

func TestStaticEmbedderDeterministic(t *testing.T) {
	e := NewStaticEmbedder(64)

	a, err := e.EmbedBatch(context.Background(), []string{"Go docs", "News"})
	require.NoError(t, err)
	b, err := e.EmbedBatch(context.Background(), []string{"Go docs", "News"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1])

	for _, vec := range a {
		assert.Len(t, vec, 64)
		assert.InDelta(t, 1.0, float64(distance.Dot(vec, vec)), 1e-4)
	}
}

func TestEmbedTabs(t *testing.T) {
	e := NewStaticEmbedder(16)
	tabs := []model.Tab{
		{ID: "tab_0", Name: "Go docs"},
		{ID: "tab_1", Name: "Go blog"},
	}

	embeddings, err := EmbedTabs(context.Background(), e, tabs)
	require.NoError(t, err)
	require.Len(t, embeddings, 2)

	assert.Equal(t, "tab_0", embeddings[0].TabID)
	assert.Equal(t, "tab_1", embeddings[1].TabID)
	assert.Equal(t, "static", embeddings[0].ModelName)
}

func TestEmbedTabsEmpty(t *testing.T) {
	embeddings, err := EmbedTabs(context.Background(), NewStaticEmbedder(8), nil)
	require.NoError(t, err)
	assert.Nil(t, embeddings)
}

type shortEmbedder struct{}

func (shortEmbedder) ModelName() string { return "short" }

func (shortEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return [][]float32{{1, 0}}, nil
}

func TestEmbedTabsCountMismatch(t *testing.T) {
	tabs := []model.Tab{{ID: "tab_0"}, {ID: "tab_1"}}

	_, err := EmbedTabs(context.Background(), shortEmbedder{}, tabs)
	assert.Error(t, err)
}
