package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// provider de reviews en memoria para los tests
type fakeTextProvider struct {
	texts map[int][]string
}

func (f *fakeTextProvider) TopReviewTexts(_ context.Context, movieID, n int) ([]string, error) {
	out := f.texts[movieID]
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

type fakeEmbedder struct {
	vecs map[string][]float64
	err  error
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float64, len(texts))
	for i, t := range texts {
		if v, ok := f.vecs[t]; ok {
			out[i] = v
		} else {
			out[i] = []float64{0, 0, 1}
		}
	}
	return out, nil
}

func catalogoDePrueba() []Movie {
	return []Movie{
		{MovieID: 1, Title: "Galaxy Wars", Overview: "space battles and laser swords galaxy empire", Genres: []string{"SciFi", "Action"}},
		{MovieID: 2, Title: "Galaxy Quest", Overview: "space adventure galaxy crew spaceship battles", Genres: []string{"SciFi", "Comedy"}},
		{MovieID: 3, Title: "Romance in Paris", Overview: "love story romantic dinner paris", Genres: []string{"Romance"}},
	}
}

func TestContentModoDegradadoSinEmbedder(t *testing.T) {
	cb := NewContentFilter(5000, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), &fakeTextProvider{}))

	assert.False(t, cb.HasEmbeddings())

	// similar_items debe responder con los vectores léxicos
	sims, err := cb.SimilarItems(1, 2, true)
	require.NoError(t, err)
	require.Len(t, sims, 2)

	// las dos de espacio se parecen más entre sí que a la romántica
	assert.Equal(t, 2, sims[0].MovieID)
	for _, s := range sims {
		assert.NotEqual(t, 1, s.MovieID)
	}
}

func TestContentEmbedderConErrorNoRompeFit(t *testing.T) {
	cb := NewContentFilter(5000, &fakeEmbedder{err: errors.New("servicio caído")})
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))
	assert.False(t, cb.HasEmbeddings())

	sims, err := cb.SimilarItems(1, 2, true)
	require.NoError(t, err)
	assert.NotEmpty(t, sims)
}

func TestContentPreferEmbeddings(t *testing.T) {
	emb := &fakeEmbedder{vecs: map[string][]float64{}}
	cb := NewContentFilter(5000, emb)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))
	assert.True(t, cb.HasEmbeddings())

	sims, err := cb.SimilarItems(1, 2, true)
	require.NoError(t, err)
	require.Len(t, sims, 2)
	// con el fake todos los embeddings son iguales: similitud 1
	assert.InDelta(t, 1.0, sims[0].Score, 1e-12)
}

func TestContentSimilarItemsOOV(t *testing.T) {
	cb := NewContentFilter(5000, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))

	sims, err := cb.SimilarItems(999, 5, false)
	require.NoError(t, err)
	assert.Empty(t, sims)
}

func TestContentRecommendForLikedUnSoloLiked(t *testing.T) {
	cb := NewContentFilter(5000, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))

	// con un único liked la salida es similar_items con los mismos
	// scores y el mismo orden
	sims, err := cb.SimilarItems(1, candidatesPerLiked, true)
	require.NoError(t, err)
	recs, err := cb.RecommendForLiked([]int{1}, 2)
	require.NoError(t, err)

	require.Len(t, recs, len(sims))
	for i := range sims {
		assert.Equal(t, sims[i].MovieID, recs[i].MovieID)
		assert.InDelta(t, sims[i].Score, recs[i].Score, 1e-12)
	}
}

func TestContentRecommendForLikedExcluyeLiked(t *testing.T) {
	cb := NewContentFilter(5000, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))

	recs, err := cb.RecommendForLiked([]int{1, 2}, 10)
	require.NoError(t, err)
	for _, r := range recs {
		assert.NotEqual(t, 1, r.MovieID)
		assert.NotEqual(t, 2, r.MovieID)
	}
}

func TestContentRecommendForLikedSumaSimilitudes(t *testing.T) {
	cb := NewContentFilter(5000, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))

	s1, err := cb.SimilarItems(1, candidatesPerLiked, true)
	require.NoError(t, err)
	s3, err := cb.SimilarItems(3, candidatesPerLiked, true)
	require.NoError(t, err)

	want := make(map[int]float64)
	for _, s := range s1 {
		if s.MovieID != 3 {
			want[s.MovieID] += s.Score
		}
	}
	for _, s := range s3 {
		if s.MovieID != 1 {
			want[s.MovieID] += s.Score
		}
	}

	recs, err := cb.RecommendForLiked([]int{1, 3}, 10)
	require.NoError(t, err)
	for _, r := range recs {
		assert.InDelta(t, want[r.MovieID], r.Score, 1e-12)
	}
}

func TestContentVocabularioAcotado(t *testing.T) {
	cb := NewContentFilter(3, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), nil))
	assert.LessOrEqual(t, cb.VocabSize(), 3)
}

func TestContentCatalogoDuplicadoFalla(t *testing.T) {
	cb := NewContentFilter(100, nil)
	err := cb.Fit(context.Background(), []Movie{
		{MovieID: 1, Title: "a"},
		{MovieID: 1, Title: "b"},
	}, nil)
	assert.Error(t, err)
}

func TestContentReviewsEntranAlCorpus(t *testing.T) {
	texts := &fakeTextProvider{texts: map[int][]string{
		3: {"amazing space battles hidden in this romance"},
	}}
	cb := NewContentFilter(5000, nil)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), texts))

	// gracias a la review, la romántica ahora comparte vocabulario con
	// las de espacio
	sims, err := cb.SimilarItems(3, 2, false)
	require.NoError(t, err)
	require.Len(t, sims, 2)
	assert.Greater(t, sims[0].Score, 0.0)
}

func TestContentRoundTrip(t *testing.T) {
	emb := &fakeEmbedder{vecs: map[string][]float64{}}
	cb := NewContentFilter(5000, emb)
	require.NoError(t, cb.Fit(context.Background(), catalogoDePrueba(), &fakeTextProvider{}))

	blob, err := cb.Save()
	require.NoError(t, err)

	restored := NewContentFilter(0, nil)
	require.NoError(t, restored.Restore(blob))

	assert.Equal(t, cb.VocabSize(), restored.VocabSize())
	assert.True(t, restored.HasEmbeddings())

	for _, id := range []int{1, 2, 3} {
		a, err := cb.SimilarItems(id, 5, false)
		require.NoError(t, err)
		b, err := restored.SimilarItems(id, 5, false)
		require.NoError(t, err)
		assert.Equal(t, a, b, "similar_items distinto tras round-trip para %d", id)
	}
}

func TestTokenizeStopwordsYBigrams(t *testing.T) {
	tokens := tokenize("The quick galaxy, a quick ship!")
	assert.Equal(t, []string{"quick", "galaxy", "quick", "ship"}, tokens)

	grams := ngrams(tokens)
	assert.Contains(t, grams, "quick galaxy")
	assert.Contains(t, grams, "galaxy quick")
	assert.Contains(t, grams, "quick ship")
	assert.Len(t, grams, 7)
}
