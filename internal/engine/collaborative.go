package engine

import (
	"fmt"
	"log"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CollaborativeFilter factoriza la matriz de ratings en factores
// latentes de usuario e ítem (SVD truncado, rango k).
//
// El vocabulario de usuarios/películas sale exclusivamente de los
// ratings de entrenamiento: cualquier id no visto es OOV y se maneja
// con defaults (predicción neutral, lista vacía), nunca con error.
type CollaborativeFilter struct {
	factors int

	userIDs  []int
	movieIDs []int
	userIdx  map[int]int
	movieIdx map[int]int

	// factores: una fila por usuario/película, largo = rango efectivo
	userFactors [][]float64
	itemFactors [][]float64

	// rated[u] = col -> rating (para exclude_rated y round-trip)
	rated []map[int]float64
}

// NewCollaborativeFilter crea el modelo con k factores latentes.
func NewCollaborativeFilter(factors int) *CollaborativeFilter {
	if factors <= 0 {
		factors = 100
	}
	return &CollaborativeFilter{factors: factors}
}

// Factors devuelve el número de factores configurado.
func (cf *CollaborativeFilter) Factors() int { return cf.factors }

// Fitted indica si el modelo ya fue entrenado con al menos un rating.
func (cf *CollaborativeFilter) Fitted() bool { return len(cf.userIDs) > 0 }

// Fit construye la matriz y la factoriza. Solo falla ante input
// malformado o si la descomposición no converge; los casos degenerados
// (un solo usuario, una sola película) producen factores triviales.
func (cf *CollaborativeFilter) Fit(ratings []Rating) error {
	m, err := BuildRatingMatrix(ratings)
	if err != nil {
		return err
	}

	cf.userIDs = m.UserIDs
	cf.movieIDs = m.MovieIDs
	cf.userIdx = make(map[int]int, len(m.UserIDs))
	for i, id := range m.UserIDs {
		cf.userIdx[id] = i
	}
	cf.movieIdx = make(map[int]int, len(m.MovieIDs))
	for i, id := range m.MovieIDs {
		cf.movieIdx[id] = i
	}

	cf.rated = make([]map[int]float64, m.Users())
	for u := range cf.rated {
		cf.rated[u] = m.Row(u)
	}

	dense := m.Dense()
	if dense == nil {
		// sin ratings: modelo vacío pero bien formado
		cf.userFactors = nil
		cf.itemFactors = nil
		return nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDThin); !ok {
		return fmt.Errorf("la SVD no convergió (matriz %dx%d)", m.Users(), m.Movies())
	}

	sigma := svd.Values(nil)

	// rango efectivo: no podemos quedarnos con más factores que
	// min(usuarios, películas)
	k := cf.factors
	if k > len(sigma) {
		k = len(sigma)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// userFactors = U_k * Σ_k, itemFactors = V_k
	// (así predict = userFactor · itemFactor aproxima el rating)
	cf.userFactors = make([][]float64, m.Users())
	for i := 0; i < m.Users(); i++ {
		vec := make([]float64, k)
		for f := 0; f < k; f++ {
			vec[f] = u.At(i, f) * sigma[f]
		}
		cf.userFactors[i] = vec
	}
	cf.itemFactors = make([][]float64, m.Movies())
	for j := 0; j < m.Movies(); j++ {
		vec := make([]float64, k)
		for f := 0; f < k; f++ {
			vec[f] = v.At(j, f)
		}
		cf.itemFactors[j] = vec
	}

	log.Printf("[collab] fit ok: users=%d movies=%d ratings=%d rango=%d",
		m.Users(), m.Movies(), len(ratings), k)
	return nil
}

// Predict devuelve el rating estimado, recortado a [1,5]. Para ids
// OOV devuelve el valor neutral de la escala (disponibilidad antes
// que "sin predicción").
func (cf *CollaborativeFilter) Predict(userID, movieID int) float64 {
	u, okU := cf.userIdx[userID]
	i, okI := cf.movieIdx[movieID]
	if !okU || !okI {
		return NeutralRating
	}
	p := floats.Dot(cf.userFactors[u], cf.itemFactors[i])
	return clamp(p, RatingMin, RatingMax)
}

// Recommend devuelve las top-k películas por producto punto
// usuario·ítem. Con excludeRated las ya valoradas se enmascaran con
// -Inf y jamás aparecen en la salida. Usuario OOV -> lista vacía.
func (cf *CollaborativeFilter) Recommend(userID, k int, excludeRated bool) ([]ScoredItem, error) {
	u, ok := cf.userIdx[userID]
	if !ok {
		return []ScoredItem{}, nil
	}

	scores := make([]float64, len(cf.movieIDs))
	for i := range cf.itemFactors {
		scores[i] = floats.Dot(cf.userFactors[u], cf.itemFactors[i])
	}
	if excludeRated {
		for col := range cf.rated[u] {
			scores[col] = math.Inf(-1)
		}
	}

	return cf.topK(scores, k, -1), nil
}

// SimilarItems devuelve las top-k películas más parecidas por coseno
// entre factores de ítem, excluyendo la propia película. OOV -> vacía.
func (cf *CollaborativeFilter) SimilarItems(movieID, k int) ([]ScoredItem, error) {
	target, ok := cf.movieIdx[movieID]
	if !ok {
		return []ScoredItem{}, nil
	}

	scores := make([]float64, len(cf.movieIDs))
	for i := range cf.itemFactors {
		scores[i] = cosineDense(cf.itemFactors[target], cf.itemFactors[i])
	}

	return cf.topK(scores, k, target), nil
}

// topK ordena por score descendente con desempate estable por índice
// (el orden de los ids ordenados de la matriz). skipIdx excluye una
// posición (p.e. la propia película); -Inf nunca se selecciona.
func (cf *CollaborativeFilter) topK(scores []float64, k, skipIdx int) []ScoredItem {
	idx := make([]int, 0, len(scores))
	for i := range scores {
		if i == skipIdx || math.IsInf(scores[i], -1) {
			continue
		}
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return idx[a] < idx[b]
	})
	if k >= 0 && len(idx) > k {
		idx = idx[:k]
	}

	out := make([]ScoredItem, 0, len(idx))
	for _, i := range idx {
		out = append(out, ScoredItem{MovieID: cf.movieIDs[i], Score: scores[i]})
	}
	return out
}

// RatedBy devuelve los ids de películas valoradas por el usuario.
func (cf *CollaborativeFilter) RatedBy(userID int) []int {
	u, ok := cf.userIdx[userID]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(cf.rated[u]))
	for col := range cf.rated[u] {
		out = append(out, cf.movieIDs[col])
	}
	sort.Ints(out)
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func cosineDense(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
