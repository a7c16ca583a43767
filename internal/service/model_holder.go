package service

import (
	"sync/atomic"
	"time"

	"recmovies-pf/internal/engine"
)

// ModelSnapshot agrupa los modelos entrenados que sirven requests en un
// momento dado. Nunca se muta después de publicado.
type ModelSnapshot struct {
	Hybrid    *engine.HybridRecommender
	Collab    *engine.CollaborativeFilter
	Content   *engine.ContentFilter
	TrainedAt time.Time
}

// ModelHolder publica snapshots con un swap atómico: los requests en
// vuelo terminan con el snapshot viejo y los nuevos ven el nuevo, sin
// locks en el camino de lectura.
type ModelHolder struct {
	cur atomic.Pointer[ModelSnapshot]
}

func NewModelHolder() *ModelHolder {
	return &ModelHolder{}
}

// Current devuelve el snapshot activo, o nil si aún no se entrenó.
func (h *ModelHolder) Current() *ModelSnapshot {
	return h.cur.Load()
}

func (h *ModelHolder) Swap(s *ModelSnapshot) {
	h.cur.Store(s)
}
