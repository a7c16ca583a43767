package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"unicode"
)

// candidatesPerLiked: cuántos vecinos se piden por cada película
// "liked" antes de agregar scores.
const candidatesPerLiked = 50

// ContentFilter es el modelo basado en contenido: un espacio vectorial
// TF-IDF (unigrams + bigrams, vocabulario acotado, stopwords en
// inglés) y, si hay Embedder disponible, un vector denso por película.
//
// Su vocabulario de películas sale del catálogo pasado a Fit y es
// independiente del modelo colaborativo: ambos pueden "conocer"
// conjuntos distintos de películas.
type ContentFilter struct {
	maxVocab int
	embedder Embedder

	movieIDs []int
	movieIdx map[int]int

	vocab map[string]int // término -> columna
	idf   []float64

	// tfidf[i] = col -> peso, con norma L2 = 1 (coseno = producto punto)
	tfidf []map[int]float64

	// embeddings[i] puede ser nil si el proveedor no estaba disponible
	embeddings [][]float64
}

// NewContentFilter crea el modelo. embedder puede ser nil (modo
// degradado: solo TF-IDF).
func NewContentFilter(maxVocab int, embedder Embedder) *ContentFilter {
	if maxVocab <= 0 {
		maxVocab = 5000
	}
	return &ContentFilter{maxVocab: maxVocab, embedder: embedder}
}

// Fitted indica si el modelo fue entrenado con al menos una película.
func (cb *ContentFilter) Fitted() bool { return len(cb.movieIDs) > 0 }

// HasEmbeddings indica si el fit logró generar vectores densos.
func (cb *ContentFilter) HasEmbeddings() bool { return cb.embeddings != nil }

// VocabSize devuelve el tamaño del vocabulario ajustado.
func (cb *ContentFilter) VocabSize() int { return len(cb.vocab) }

// Fit construye el corpus (metadata + mejores reviews vía texts) y
// ajusta TF-IDF. Si hay Embedder intenta además generar embeddings;
// si falla, el modelo sigue funcionando solo con TF-IDF (warning, no
// error). Solo el catálogo malformado (ids duplicados) es error.
func (cb *ContentFilter) Fit(ctx context.Context, movies []Movie, texts TextProvider) error {
	cb.movieIDs = make([]int, 0, len(movies))
	cb.movieIdx = make(map[int]int, len(movies))

	corpus := make([]string, 0, len(movies))
	for _, m := range movies {
		if _, dup := cb.movieIdx[m.MovieID]; dup {
			return fmt.Errorf("catálogo malformado: movieId %d duplicado", m.MovieID)
		}
		cb.movieIdx[m.MovieID] = len(cb.movieIDs)
		cb.movieIDs = append(cb.movieIDs, m.MovieID)
		corpus = append(corpus, BuildMovieText(ctx, m, texts))
	}

	cb.fitTFIDF(corpus)

	cb.embeddings = nil
	if cb.embedder != nil && len(corpus) > 0 {
		embs, err := cb.embedder.Embed(ctx, corpus)
		switch {
		case err != nil:
			log.Printf("[content] embedder no disponible, sigo solo con TF-IDF: %v", err)
		case len(embs) != len(corpus):
			log.Printf("[content] embedder devolvió %d vectores para %d textos, los descarto", len(embs), len(corpus))
		default:
			cb.embeddings = embs
			log.Printf("[content] embeddings listos: %d vectores dim=%d", len(embs), dimOf(embs))
		}
	}

	log.Printf("[content] fit ok: movies=%d vocab=%d embeddings=%v",
		len(cb.movieIDs), len(cb.vocab), cb.HasEmbeddings())
	return nil
}

func dimOf(vecs [][]float64) int {
	if len(vecs) == 0 {
		return 0
	}
	return len(vecs[0])
}

// fitTFIDF arma vocabulario (top maxVocab términos por frecuencia en
// el corpus, desempate alfabético), idf suavizado y vectores L2.
func (cb *ContentFilter) fitTFIDF(corpus []string) {
	docs := make([][]string, len(corpus))
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, text := range corpus {
		terms := ngrams(tokenize(text))
		docs[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			termFreq[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	// vocabulario acotado: mayor frecuencia primero, empates en orden
	// alfabético para que el fit sea determinístico
	terms := make([]string, 0, len(termFreq))
	for t := range termFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(a, b int) bool {
		if termFreq[terms[a]] != termFreq[terms[b]] {
			return termFreq[terms[a]] > termFreq[terms[b]]
		}
		return terms[a] < terms[b]
	})
	if len(terms) > cb.maxVocab {
		terms = terms[:cb.maxVocab]
	}

	cb.vocab = make(map[string]int, len(terms))
	cb.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for col, t := range terms {
		cb.vocab[t] = col
		// idf suavizado: ln((1+n)/(1+df)) + 1
		cb.idf[col] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	cb.tfidf = make([]map[int]float64, len(docs))
	for i, terms := range docs {
		vec := make(map[int]float64)
		for _, t := range terms {
			if col, ok := cb.vocab[t]; ok {
				vec[col] += cb.idf[col]
			}
		}
		normalizeL2(vec)
		cb.tfidf[i] = vec
	}
}

// tokenize pasa a minúsculas, parte por caracteres no alfanuméricos,
// descarta tokens de un solo carácter y stopwords.
func tokenize(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) < 2 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ngrams devuelve unigrams + bigrams consecutivos.
func ngrams(tokens []string) []string {
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

func normalizeL2(vec map[int]float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for k, v := range vec {
		vec[k] = v / norm
	}
}

func dotSparse(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for k, v := range a {
		if w, ok := b[k]; ok {
			sum += v * w
		}
	}
	return sum
}

// SimilarItems devuelve las top-k películas más parecidas a movieID.
// Con preferEmbeddings usa los vectores densos si existen; si no,
// cae a TF-IDF. Película fuera del catálogo -> lista vacía.
func (cb *ContentFilter) SimilarItems(movieID, k int, preferEmbeddings bool) ([]ScoredItem, error) {
	target, ok := cb.movieIdx[movieID]
	if !ok {
		return []ScoredItem{}, nil
	}

	scores := make([]float64, len(cb.movieIDs))
	if preferEmbeddings && cb.embeddings != nil {
		for i := range cb.embeddings {
			scores[i] = cosineDense(cb.embeddings[target], cb.embeddings[i])
		}
	} else {
		// los vectores TF-IDF ya están normalizados: coseno = dot
		for i := range cb.tfidf {
			scores[i] = dotSparse(cb.tfidf[target], cb.tfidf[i])
		}
	}

	return cb.topK(scores, k, map[int]struct{}{target: {}}), nil
}

// RecommendForLiked acumula aditivamente las similitudes de los
// vecinos de cada película liked (top-50 por liked) y devuelve los
// top-k candidatos. Una película parecida a varias liked suma todas
// esas similitudes ("consenso amplio"), no solo la mejor.
func (cb *ContentFilter) RecommendForLiked(liked []int, k int) ([]ScoredItem, error) {
	likedSet := make(map[int]struct{}, len(liked))
	for _, id := range liked {
		likedSet[id] = struct{}{}
	}

	acc := make(map[int]float64)
	for _, id := range liked {
		similar, err := cb.SimilarItems(id, candidatesPerLiked, true)
		if err != nil {
			return nil, err
		}
		for _, s := range similar {
			if _, isLiked := likedSet[s.MovieID]; isLiked {
				continue
			}
			acc[s.MovieID] += s.Score
		}
	}

	out := make([]ScoredItem, 0, len(acc))
	for id, score := range acc {
		out = append(out, ScoredItem{MovieID: id, Score: score})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].MovieID < out[b].MovieID
	})
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

// topK con desempate estable por índice del catálogo.
func (cb *ContentFilter) topK(scores []float64, k int, skip map[int]struct{}) []ScoredItem {
	idx := make([]int, 0, len(scores))
	for i := range scores {
		if _, s := skip[i]; s {
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
		out = append(out, ScoredItem{MovieID: cb.movieIDs[i], Score: scores[i]})
	}
	return out
}
