package engine

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// RatingMatrix es la matriz dispersa usuario×película construida a
// partir de las observaciones de entrenamiento. Los ids se ordenan y
// deduplican para que el mismo input produzca siempre el mismo mapeo
// id -> índice.
type RatingMatrix struct {
	UserIDs  []int
	MovieIDs []int

	userIdx  map[int]int
	movieIdx map[int]int

	// rows[u] = col -> rating. La ausencia de celda significa "no
	// valorado", nunca se confunde con un rating 0 explícito.
	rows []map[int]float64
}

// BuildRatingMatrix arma la matriz a partir de las observaciones.
// Devuelve error solo ante observaciones malformadas (rating no finito
// o fuera de la escala). Una lista vacía produce una matriz vacía.
func BuildRatingMatrix(ratings []Rating) (*RatingMatrix, error) {
	userSet := make(map[int]struct{})
	movieSet := make(map[int]struct{})

	for _, r := range ratings {
		if math.IsNaN(r.Score) || math.IsInf(r.Score, 0) {
			return nil, fmt.Errorf("rating inválido para user=%d movie=%d: %v", r.UserID, r.MovieID, r.Score)
		}
		if r.Score < RatingMin || r.Score > RatingMax {
			return nil, fmt.Errorf("rating fuera de escala [%g,%g] para user=%d movie=%d: %g",
				RatingMin, RatingMax, r.UserID, r.MovieID, r.Score)
		}
		userSet[r.UserID] = struct{}{}
		movieSet[r.MovieID] = struct{}{}
	}

	m := &RatingMatrix{
		UserIDs:  sortedKeys(userSet),
		MovieIDs: sortedKeys(movieSet),
	}

	m.userIdx = make(map[int]int, len(m.UserIDs))
	for i, id := range m.UserIDs {
		m.userIdx[id] = i
	}
	m.movieIdx = make(map[int]int, len(m.MovieIDs))
	for i, id := range m.MovieIDs {
		m.movieIdx[id] = i
	}

	m.rows = make([]map[int]float64, len(m.UserIDs))
	for i := range m.rows {
		m.rows[i] = make(map[int]float64)
	}
	for _, r := range ratings {
		// si el mismo par aparece dos veces gana la última observación
		m.rows[m.userIdx[r.UserID]][m.movieIdx[r.MovieID]] = r.Score
	}

	return m, nil
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Users y Movies devuelven las dimensiones de la matriz.
func (m *RatingMatrix) Users() int  { return len(m.UserIDs) }
func (m *RatingMatrix) Movies() int { return len(m.MovieIDs) }

// Row devuelve las celdas observadas de un usuario (col -> rating).
func (m *RatingMatrix) Row(userIdx int) map[int]float64 {
	return m.rows[userIdx]
}

// Dense materializa la matriz como densa (0 en las celdas ausentes)
// para la factorización. Devuelve nil si la matriz está vacía.
func (m *RatingMatrix) Dense() *mat.Dense {
	if m.Users() == 0 || m.Movies() == 0 {
		return nil
	}
	d := mat.NewDense(m.Users(), m.Movies(), nil)
	for u, row := range m.rows {
		for c, v := range row {
			d.Set(u, c, v)
		}
	}
	return d
}
