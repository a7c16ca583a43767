package engine

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Los modelos se serializan como blobs gob opacos: quien los guarda
// (Mongo, disco) no necesita conocer su estructura. gob codifica los
// float64 por bits, así que el round-trip es exacto.

type collabSnapshot struct {
	Factors     int
	UserIDs     []int
	MovieIDs    []int
	UserFactors [][]float64
	ItemFactors [][]float64
	Rated       []map[int]float64
}

// Save serializa el modelo colaborativo ajustado.
func (cf *CollaborativeFilter) Save() ([]byte, error) {
	snap := collabSnapshot{
		Factors:     cf.factors,
		UserIDs:     cf.userIDs,
		MovieIDs:    cf.movieIDs,
		UserFactors: cf.userFactors,
		ItemFactors: cf.itemFactors,
		Rated:       cf.rated,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("encode modelo colaborativo: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore reconstruye el modelo desde un blob de Save. Las tablas
// id -> índice se rearman completas (nunca se mutan en sitio).
func (cf *CollaborativeFilter) Restore(data []byte) error {
	var snap collabSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return fmt.Errorf("decode modelo colaborativo: %w", err)
	}

	cf.factors = snap.Factors
	cf.userIDs = snap.UserIDs
	cf.movieIDs = snap.MovieIDs
	cf.userFactors = snap.UserFactors
	cf.itemFactors = snap.ItemFactors
	cf.rated = snap.Rated

	cf.userIdx = make(map[int]int, len(cf.userIDs))
	for i, id := range cf.userIDs {
		cf.userIdx[id] = i
	}
	cf.movieIdx = make(map[int]int, len(cf.movieIDs))
	for i, id := range cf.movieIDs {
		cf.movieIdx[id] = i
	}
	return nil
}

type contentSnapshot struct {
	MaxVocab   int
	MovieIDs   []int
	Vocab      map[string]int
	IDF        []float64
	TFIDF      []map[int]float64
	Embeddings [][]float64
}

// Save serializa el modelo de contenido ajustado (el Embedder no se
// serializa: es un colaborador inyectado, no estado).
func (cb *ContentFilter) Save() ([]byte, error) {
	snap := contentSnapshot{
		MaxVocab:   cb.maxVocab,
		MovieIDs:   cb.movieIDs,
		Vocab:      cb.vocab,
		IDF:        cb.idf,
		TFIDF:      cb.tfidf,
		Embeddings: cb.embeddings,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("encode modelo de contenido: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore reconstruye el modelo desde un blob de Save.
func (cb *ContentFilter) Restore(data []byte) error {
	var snap contentSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return fmt.Errorf("decode modelo de contenido: %w", err)
	}

	cb.maxVocab = snap.MaxVocab
	cb.movieIDs = snap.MovieIDs
	cb.vocab = snap.Vocab
	cb.idf = snap.IDF
	cb.tfidf = snap.TFIDF
	cb.embeddings = snap.Embeddings

	cb.movieIdx = make(map[int]int, len(cb.movieIDs))
	for i, id := range cb.movieIDs {
		cb.movieIdx[id] = i
	}
	return nil
}
