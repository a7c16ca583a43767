package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sub-modelos fake para aislar la lógica de combinación

type fakeContent struct {
	recs []ScoredItem
	sims map[int][]ScoredItem
	err  error
}

func (f *fakeContent) RecommendForLiked(liked []int, k int) ([]ScoredItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recs, nil
}

func (f *fakeContent) SimilarItems(movieID, k int, preferEmbeddings bool) ([]ScoredItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sims[movieID], nil
}

type fakeCollab struct {
	recs      []ScoredItem
	predicted float64
	err       error
}

func (f *fakeCollab) Recommend(userID, k int, excludeRated bool) ([]ScoredItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recs, nil
}

func (f *fakeCollab) Predict(userID, movieID int) float64 { return f.predicted }

func TestHybridNormalizaPesos(t *testing.T) {
	h := NewHybridRecommender(&fakeContent{}, &fakeCollab{}, 0.6, 0.4)
	assert.InDelta(t, 0.6, h.Alpha(), 1e-12)
	assert.InDelta(t, 0.4, h.Beta(), 1e-12)
	assert.InDelta(t, 1.0, h.Alpha()+h.Beta(), 1e-12)

	h = NewHybridRecommender(&fakeContent{}, &fakeCollab{}, 3, 1)
	assert.InDelta(t, 0.75, h.Alpha(), 1e-12)
	assert.InDelta(t, 0.25, h.Beta(), 1e-12)

	// pesos inválidos caen al default
	h = NewHybridRecommender(&fakeContent{}, &fakeCollab{}, 0, 0)
	assert.InDelta(t, 1.0, h.Alpha()+h.Beta(), 1e-12)
}

func TestHybridCombinaScores(t *testing.T) {
	// contenido da 0.8 (máx 1.0), colaborativo da 4.0 (máx 5.0)
	// => 0.6·0.8 + 0.4·0.8 = 0.8
	content := &fakeContent{recs: []ScoredItem{{MovieID: 5, Score: 0.8}}}
	collab := &fakeCollab{recs: []ScoredItem{{MovieID: 5, Score: 4.0}}}

	h := NewHybridRecommender(content, collab, 0.6, 0.4)
	out := h.Recommend(1, []int{9}, 10)

	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].MovieID)
	assert.InDelta(t, 0.8, out[0].Score, 1e-12)
}

func TestHybridContribucionFaltanteValeCero(t *testing.T) {
	// la película 7 solo la conoce el contenido; la 8 solo el colaborativo
	content := &fakeContent{recs: []ScoredItem{{MovieID: 7, Score: 1.0}}}
	collab := &fakeCollab{recs: []ScoredItem{{MovieID: 8, Score: 5.0}}}

	h := NewHybridRecommender(content, collab, 0.5, 0.5)
	out := h.Recommend(1, []int{9}, 10)

	require.Len(t, out, 2)
	scores := map[int]float64{}
	for _, s := range out {
		scores[s.MovieID] = s.Score
	}
	assert.InDelta(t, 0.5, scores[7], 1e-12)
	assert.InDelta(t, 0.5, scores[8], 1e-12)
}

func TestHybridSinLikedNiUsuario(t *testing.T) {
	h := NewHybridRecommender(&fakeContent{}, &fakeCollab{}, 0.6, 0.4)
	assert.Empty(t, h.Recommend(0, nil, 10))
}

func TestHybridDegradacionParcial(t *testing.T) {
	// el contenido falla: se sigue solo con el colaborativo
	content := &fakeContent{err: errors.New("modelo roto")}
	collab := &fakeCollab{recs: []ScoredItem{{MovieID: 3, Score: 5.0}}}

	h := NewHybridRecommender(content, collab, 0.6, 0.4)
	out := h.Recommend(1, []int{9}, 10)

	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].MovieID)
	assert.InDelta(t, 0.4, out[0].Score, 1e-12)
}

func TestHybridFallaTotalDevuelveVacio(t *testing.T) {
	content := &fakeContent{err: errors.New("roto")}
	collab := &fakeCollab{err: errors.New("también roto")}

	h := NewHybridRecommender(content, collab, 0.6, 0.4)
	assert.Empty(t, h.Recommend(1, []int{9}, 10))
}

func TestHybridRespetaK(t *testing.T) {
	content := &fakeContent{recs: []ScoredItem{
		{MovieID: 1, Score: 0.9},
		{MovieID: 2, Score: 0.8},
		{MovieID: 3, Score: 0.7},
	}}
	h := NewHybridRecommender(content, &fakeCollab{}, 1, 0)

	out := h.Recommend(0, []int{9}, 2)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].MovieID)
	assert.Equal(t, 2, out[1].MovieID)
}

func TestHybridExplain(t *testing.T) {
	content := &fakeContent{sims: map[int][]ScoredItem{
		10: {{MovieID: 5, Score: 0.9}},
		11: {{MovieID: 5, Score: 0.3}},
	}}
	collab := &fakeCollab{predicted: 4.0}

	h := NewHybridRecommender(content, collab, 0.6, 0.4)
	ex := h.Explain(5, 1, []int{10, 11})

	require.NotNil(t, ex)
	assert.Equal(t, 5, ex.MovieID)
	// la liked 10 es la responsable de la mayor similitud
	assert.Equal(t, []int{10}, ex.SimilarMovies)
	assert.InDelta(t, 0.9*0.6, ex.ContentContribution, 1e-12)
	assert.InDelta(t, (4.0/5.0)*0.4, ex.CollabContribution, 1e-12)
	assert.InDelta(t, ex.ContentContribution+ex.CollabContribution, ex.TotalScore, 1e-12)
}

func TestHybridExplainSinContexto(t *testing.T) {
	h := NewHybridRecommender(&fakeContent{}, &fakeCollab{predicted: 3.0}, 0.6, 0.4)

	ex := h.Explain(5, 0, nil)
	require.NotNil(t, ex)
	assert.Zero(t, ex.ContentContribution)
	assert.Zero(t, ex.CollabContribution)
	assert.Empty(t, ex.SimilarMovies)
	assert.Zero(t, ex.TotalScore)
}

// Integración: modelos reales + híbrido
func TestHybridConModelosReales(t *testing.T) {
	cf := fitCollab(t)

	cb := NewContentFilter(5000, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))

	h := NewHybridRecommender(cb, cf, 0.6, 0.4)
	out := h.Recommend(1, []int{1}, 5)

	assert.NotEmpty(t, out)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Score, out[i].Score)
	}
	for _, s := range out {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
}
