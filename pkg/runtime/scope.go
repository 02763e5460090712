package runtime

import "sort"

// Scope maps names to entities and links to its enclosing scope.
type Scope struct {
	entities map[string]Entity
	parent   *Scope
}

// NewScope creates a new scope, optionally nested under a parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		entities: make(map[string]Entity),
		parent:   parent,
	}
}

// Declare inserts or overwrites an entity in this scope only.
func (s *Scope) Declare(entity Entity) {
	s.entities[entity.EntityName()] = entity
}

// Resolve searches outward through the scope chain. A miss is not an error.
func (s *Scope) Resolve(name string) (Entity, bool) {
	if entity, ok := s.entities[name]; ok {
		return entity, true
	}
	if s.parent != nil {
		return s.parent.Resolve(name)
	}
	return nil, false
}

// Lookup checks this scope only.
func (s *Scope) Lookup(name string) (Entity, bool) {
	entity, ok := s.entities[name]
	return entity, ok
}

// Names returns the names declared in this scope in sorted order.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.entities))
	for name := range s.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the current bindings.
func (s *Scope) Snapshot() map[string]Entity {
	out := make(map[string]Entity, len(s.entities))
	for k, v := range s.entities {
		out[k] = v
	}
	return out
}

// Checkpoint records the bindings of this scope and the values of its variables. The
// returned function restores both. Child scopes are not covered.
func (s *Scope) Checkpoint() (restore func()) {
	bindings := s.Snapshot()
	values := make(map[*Variable]Value)
	for _, entity := range bindings {
		if v, ok := entity.(*Variable); ok {
			values[v] = v.Value
		}
	}
	return func() {
		s.entities = bindings
		for v, val := range values {
			v.Value = val
		}
	}
}
