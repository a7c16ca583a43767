package service

import (
	"testing"

	"recmovies-pf/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyEstableConLikedDesordenado(t *testing.T) {
	a := cacheKey(RecRequest{UserID: 7, K: 10, Liked: []int{3, 1, 2}})
	b := cacheKey(RecRequest{UserID: 7, K: 10, Liked: []int{2, 3, 1}})

	assert.Equal(t, a, b, "la key no debe depender del orden de liked")
	assert.Equal(t, "rec:user:7:k:10:liked:1,2,3", a)
}

func TestCacheKeyDistingueUsuarioYK(t *testing.T) {
	base := cacheKey(RecRequest{UserID: 7, K: 10})

	assert.NotEqual(t, base, cacheKey(RecRequest{UserID: 8, K: 10}))
	assert.NotEqual(t, base, cacheKey(RecRequest{UserID: 7, K: 20}))
	assert.NotEqual(t, base, cacheKey(RecRequest{UserID: 7, K: 10, Liked: []int{5}}))
}

func TestLikedFromRatingsUsaElUmbral(t *testing.T) {
	ratings := []models.RatingDoc{
		{UserID: 1, MovieID: 10, Rating: 5.0},
		{UserID: 1, MovieID: 20, Rating: 4.0},
		{UserID: 1, MovieID: 30, Rating: 3.9},
		{UserID: 1, MovieID: 40, Rating: 1.0},
	}

	liked := likedFromRatings(ratings)
	assert.Equal(t, []int{10, 20}, liked)
}

func TestLikedFromRatingsSinRatingsAltos(t *testing.T) {
	ratings := []models.RatingDoc{
		{UserID: 1, MovieID: 10, Rating: 2.0},
	}
	assert.Empty(t, likedFromRatings(ratings))
}

func TestModelHolderSwap(t *testing.T) {
	h := NewModelHolder()
	assert.Nil(t, h.Current(), "sin entrenar no hay snapshot")

	snap := &ModelSnapshot{}
	h.Swap(snap)
	assert.Same(t, snap, h.Current())

	snap2 := &ModelSnapshot{}
	h.Swap(snap2)
	assert.Same(t, snap2, h.Current(), "el swap reemplaza el snapshot completo")
}
