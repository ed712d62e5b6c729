package sim

// Arena is an append-only collection of entities addressed by EntityID.
// Entities are never removed during a game; a restart builds a new Arena.
type Arena struct {
	entities []Entity
}

// NewArena creates an empty arena with room for capacity entities.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{entities: make([]Entity, 0, capacity)}
}

// Spawn appends an entity and returns its identifier.
func (a *Arena) Spawn(e Entity) EntityID {
	a.entities = append(a.entities, e)
	return EntityID(len(a.entities) - 1)
}

// Get returns a pointer to the entity with the given id.
// The pointer is valid until the next Spawn.
func (a *Arena) Get(id EntityID) (*Entity, bool) {
	if id < 0 || int(id) >= len(a.entities) {
		return nil, false
	}
	return &a.entities[id], true
}

// Len returns the number of entities ever spawned.
func (a *Arena) Len() int {
	return len(a.entities)
}

// Each calls fn for every entity in spawn order. fn may mutate the entity
// but must not spawn.
func (a *Arena) Each(fn func(id EntityID, e *Entity)) {
	for i := range a.entities {
		fn(EntityID(i), &a.entities[i])
	}
}

// Snapshot returns a copy of all entities in spawn order.
func (a *Arena) Snapshot() []Entity {
	out := make([]Entity, len(a.entities))
	copy(out, a.entities)
	return out
}
