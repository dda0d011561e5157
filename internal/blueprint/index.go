package blueprint

import (
	qerr "github.com/hindren/qudprops/internal/errors"
)

// Index is an in-memory name-to-entity map implementing Store. It is
// populated once when the definition database loads and read-only
// afterwards.
type Index struct {
	entities map[string]*Entity
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{entities: make(map[string]*Entity)}
}

// Add registers an entity under its name. Names must be unique.
func (x *Index) Add(e *Entity) error {
	if e == nil || e.Name == "" {
		return qerr.InvalidArgument("entity must have a name")
	}
	if _, exists := x.entities[e.Name]; exists {
		return qerr.InvalidArgumentf("duplicate entity name %q", e.Name)
	}
	x.entities[e.Name] = e
	return nil
}

// Get returns the entity registered under name.
func (x *Index) Get(name string) (*Entity, error) {
	e, ok := x.entities[name]
	if !ok {
		return nil, qerr.NotFoundf("entity %q not found", name)
	}
	return e, nil
}

// Len returns the number of registered entities.
func (x *Index) Len() int {
	return len(x.entities)
}

// FieldValue implements Store.
func (x *Index) FieldValue(e *Entity, group Group, key, attr string) (string, bool) {
	return e.FieldValue(group, key, attr)
}

// IsFieldPresent implements Store.
func (x *Index) IsFieldPresent(e *Entity, group Group, key string) bool {
	return e.IsFieldPresent(group, key)
}

// InheritsFrom implements Store.
func (x *Index) InheritsFrom(e *Entity, ancestor string) bool {
	return e.InheritsFrom(ancestor)
}

// ResolveReference implements Store.
func (x *Index) ResolveReference(name string) (*Entity, bool) {
	e, ok := x.entities[name]
	return e, ok
}
