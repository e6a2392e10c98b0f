package physics

// ID identifies an entity in an Arena. IDs are never reused.
type ID int

// NoID never refers to an entity.
const NoID ID = -1

// Arena is an index-stable entity container. Entities are addressed by ID,
// iterate in insertion order, and keep their ID across Compact.
type Arena struct {
	entities []Entity
	ids      []ID
	index    map[ID]int
	next     ID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{index: make(map[ID]int)}
}

// Add stores an entity and returns its ID.
func (a *Arena) Add(e Entity) ID {
	if a.index == nil {
		a.index = make(map[ID]int)
	}
	id := a.next
	a.next++
	a.index[id] = len(a.entities)
	a.entities = append(a.entities, e)
	a.ids = append(a.ids, id)
	return id
}

// Get returns the entity with the given ID, or nil if it does not exist.
// The pointer is valid until the next Add, Remove or Compact.
func (a *Arena) Get(id ID) *Entity {
	i, ok := a.index[id]
	if !ok {
		return nil
	}
	return &a.entities[i]
}

// Len returns the number of stored entities.
func (a *Arena) Len() int {
	return len(a.entities)
}

// IDs returns the entity IDs in iteration order.
func (a *Arena) IDs() []ID {
	out := make([]ID, len(a.ids))
	copy(out, a.ids)
	return out
}

// Each calls fn for every entity in insertion order.
func (a *Arena) Each(fn func(id ID, e *Entity)) {
	for i := range a.entities {
		fn(a.ids[i], &a.entities[i])
	}
}

// First returns the first entity with the given role.
func (a *Arena) First(role Role) (ID, bool) {
	for i := range a.entities {
		if a.entities[i].Role == role {
			return a.ids[i], true
		}
	}
	return 0, false
}

// Count returns the number of entities with the given role.
func (a *Arena) Count(role Role) int {
	n := 0
	for i := range a.entities {
		if a.entities[i].Role == role {
			n++
		}
	}
	return n
}

// ActiveBricks returns the number of active bricks with hits left.
func (a *Arena) ActiveBricks() int {
	n := 0
	for i := range a.entities {
		e := &a.entities[i]
		if e.Role == RoleBrick && e.Active && e.Hits > 0 {
			n++
		}
	}
	return n
}

// Remove deletes a single entity. It reports whether the ID existed.
func (a *Arena) Remove(id ID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	a.entities = append(a.entities[:i], a.entities[i+1:]...)
	a.ids = append(a.ids[:i], a.ids[i+1:]...)
	a.reindex()
	return true
}

// RemoveRole deletes every entity with the given role and returns how many
// were removed.
func (a *Arena) RemoveRole(role Role) int {
	return a.filter(func(e *Entity) bool { return e.Role != role })
}

// Compact drops inactive bricks and returns how many were removed.
// Call it between ticks, never during one.
func (a *Arena) Compact() int {
	return a.filter(func(e *Entity) bool { return e.Role != RoleBrick || e.Active })
}

// filter keeps the entities for which keep returns true.
func (a *Arena) filter(keep func(e *Entity) bool) int {
	n := 0
	for i := range a.entities {
		if keep(&a.entities[i]) {
			a.entities[n] = a.entities[i]
			a.ids[n] = a.ids[i]
			n++
		}
	}
	removed := len(a.entities) - n
	clear(a.entities[n:])
	a.entities = a.entities[:n]
	a.ids = a.ids[:n]
	if removed > 0 {
		a.reindex()
	}
	return removed
}

func (a *Arena) reindex() {
	clear(a.index)
	for i, id := range a.ids {
		a.index[id] = i
	}
}
