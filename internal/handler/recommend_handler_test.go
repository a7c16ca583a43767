package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiked(t *testing.T) {
	r := httptest.NewRequest("GET", "/me/recommendations?liked=1,2,3", nil)
	assert.Equal(t, []int{1, 2, 3}, parseLiked(r))
}

func TestParseLikedVacio(t *testing.T) {
	r := httptest.NewRequest("GET", "/me/recommendations", nil)
	assert.Nil(t, parseLiked(r))
}

func TestParseLikedIgnoraBasura(t *testing.T) {
	r := httptest.NewRequest("GET", "/me/recommendations?liked=1,abc,%203", nil)
	assert.Equal(t, []int{1, 3}, parseLiked(r))
}
