package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// escenario base de los tests: 2 usuarios, 3 películas
func fitCollab(t *testing.T) *CollaborativeFilter {
	t.Helper()
	cf := NewCollaborativeFilter(2)
	err := cf.Fit([]Rating{
		{UserID: 1, MovieID: 1, Score: 5},
		{UserID: 1, MovieID: 2, Score: 1},
		{UserID: 2, MovieID: 1, Score: 4},
		{UserID: 2, MovieID: 3, Score: 5},
	})
	require.NoError(t, err)
	return cf
}

func TestCollabPredictDentroDeEscala(t *testing.T) {
	cf := fitCollab(t)

	p := cf.Predict(1, 3)
	assert.GreaterOrEqual(t, p, RatingMin)
	assert.LessOrEqual(t, p, RatingMax)
}

func TestCollabPredictOOVDevuelveNeutral(t *testing.T) {
	cf := fitCollab(t)

	assert.Equal(t, NeutralRating, cf.Predict(999, 1))
	assert.Equal(t, NeutralRating, cf.Predict(1, 999))
	assert.Equal(t, NeutralRating, cf.Predict(999, 999))
}

func TestCollabRecommendExcluyeValoradas(t *testing.T) {
	cf := fitCollab(t)

	recs, err := cf.Recommend(1, 1, true)
	require.NoError(t, err)

	// el usuario 1 valoró 1 y 2; el único candidato posible es 3
	require.Len(t, recs, 1)
	assert.Equal(t, 3, recs[0].MovieID)
}

func TestCollabRecommendSinExcluir(t *testing.T) {
	cf := fitCollab(t)

	recs, err := cf.Recommend(1, 10, false)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	seen := make(map[int]bool)
	for _, r := range recs {
		assert.False(t, seen[r.MovieID], "movieId duplicado en la salida")
		seen[r.MovieID] = true
	}
}

func TestCollabRecommendUsuarioOOV(t *testing.T) {
	cf := fitCollab(t)

	recs, err := cf.Recommend(999, 5, true)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestCollabSimilarItemsExcluyeSelf(t *testing.T) {
	cf := fitCollab(t)

	sims, err := cf.SimilarItems(1, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, sims)
	for _, s := range sims {
		assert.NotEqual(t, 1, s.MovieID)
	}

	sims, err = cf.SimilarItems(999, 10)
	require.NoError(t, err)
	assert.Empty(t, sims)
}

func TestCollabCasosDegenerados(t *testing.T) {
	// un solo usuario, una sola película: factores triviales válidos
	cf := NewCollaborativeFilter(50)
	require.NoError(t, cf.Fit([]Rating{{UserID: 1, MovieID: 1, Score: 4}}))

	p := cf.Predict(1, 1)
	assert.GreaterOrEqual(t, p, RatingMin)
	assert.LessOrEqual(t, p, RatingMax)

	// fit vacío: modelo sin entrenar pero operativo
	empty := NewCollaborativeFilter(10)
	require.NoError(t, empty.Fit(nil))
	assert.False(t, empty.Fitted())
	assert.Equal(t, NeutralRating, empty.Predict(1, 1))
	recs, err := empty.Recommend(1, 5, true)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestCollabFitMalformadoFalla(t *testing.T) {
	cf := NewCollaborativeFilter(2)
	err := cf.Fit([]Rating{{UserID: 1, MovieID: 1, Score: 7}})
	assert.Error(t, err)
}

func TestCollabRoundTrip(t *testing.T) {
	cf := fitCollab(t)

	blob, err := cf.Save()
	require.NoError(t, err)

	restored := NewCollaborativeFilter(2)
	require.NoError(t, restored.Restore(blob))

	// predicciones idénticas bit a bit para pares de prueba fijos
	probes := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {999, 1}}
	for _, p := range probes {
		assert.Equal(t, cf.Predict(p[0], p[1]), restored.Predict(p[0], p[1]),
			"predicción distinta tras round-trip para %v", p)
	}

	a, err := cf.Recommend(1, 3, true)
	require.NoError(t, err)
	b, err := restored.Recommend(1, 3, true)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
