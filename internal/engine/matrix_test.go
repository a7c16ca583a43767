package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRatingMatrixOrdenDeterministico(t *testing.T) {
	// mismo contenido en distinto orden => mismo mapeo id -> índice
	a := []Rating{
		{UserID: 7, MovieID: 3, Score: 4},
		{UserID: 2, MovieID: 9, Score: 5},
		{UserID: 7, MovieID: 9, Score: 1},
	}
	b := []Rating{a[2], a[0], a[1]}

	ma, err := BuildRatingMatrix(a)
	require.NoError(t, err)
	mb, err := BuildRatingMatrix(b)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 7}, ma.UserIDs)
	assert.Equal(t, []int{3, 9}, ma.MovieIDs)
	assert.Equal(t, ma.UserIDs, mb.UserIDs)
	assert.Equal(t, ma.MovieIDs, mb.MovieIDs)
}

func TestBuildRatingMatrixVacia(t *testing.T) {
	m, err := BuildRatingMatrix(nil)
	require.NoError(t, err)
	assert.Empty(t, m.UserIDs)
	assert.Empty(t, m.MovieIDs)
	assert.Nil(t, m.Dense())
}

func TestBuildRatingMatrixCeldasAusentes(t *testing.T) {
	m, err := BuildRatingMatrix([]Rating{
		{UserID: 1, MovieID: 1, Score: 5},
		{UserID: 1, MovieID: 2, Score: 1},
		{UserID: 2, MovieID: 2, Score: 3},
	})
	require.NoError(t, err)

	// usuario 2 no valoró la película 1: la celda no existe
	row := m.Row(1)
	_, ok := row[0]
	assert.False(t, ok)
	assert.Equal(t, 3.0, row[1])
}

func TestBuildRatingMatrixInputMalformado(t *testing.T) {
	_, err := BuildRatingMatrix([]Rating{{UserID: 1, MovieID: 1, Score: math.NaN()}})
	assert.Error(t, err)

	_, err = BuildRatingMatrix([]Rating{{UserID: 1, MovieID: 1, Score: 9.5}})
	assert.Error(t, err)

	_, err = BuildRatingMatrix([]Rating{{UserID: 1, MovieID: 1, Score: 0}})
	assert.Error(t, err)
}
