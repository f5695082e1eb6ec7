package ecs

import (
	"fmt"

	"github.com/milk9111/orbitsim/ecs/component"
)

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("add %s: %w", kind.Name(), component.ErrNilComponent)
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("add %s to %v: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.IsAlive(e) && w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(e).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// ForEach visits every entity with the component, in creation order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	store := w.store(kind.ID(), false)
	if store.Len() == 0 || fn == nil {
		return
	}
	for _, e := range w.Entities() {
		if v, ok := store.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach3 visits entities that carry all three components, in creation order.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	if sa.Len() == 0 || sb.Len() == 0 || sc.Len() == 0 || fn == nil {
		return
	}
	for _, e := range w.Entities() {
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		c, okC := sc.Get(e).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
