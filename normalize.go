package tabgroup

import (
	"github.com/hupe1980/tabgroup/distance"
	"github.com/hupe1980/tabgroup/model"
)

// normalize L2-normalizes every embedding vector so Euclidean distance on
// the result is monotonic with cosine distance. The input is not modified.
func normalize(embeddings []model.Embedding) ([][]float32, error) {
	if len(embeddings) == 0 {
		return nil, nil
	}

	dim := embeddings[0].Dimension()
	vecs := make([][]float32, len(embeddings))

	for i, e := range embeddings {
		if e.Dimension() != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: e.Dimension()}
		}
		v, ok := distance.NormalizeL2Copy(e.Vector)
		if !ok {
			return nil, &ErrZeroNorm{Index: i, TabID: e.TabID}
		}
		vecs[i] = v
	}

	return vecs, nil
}
