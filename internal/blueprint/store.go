package blueprint

//go:generate mockgen -destination=mock/mock.go -package=mockblueprint -source=store.go

// Store is the contract the stats engine consumes from the definition
// database. Implementations must resolve fields with nearest-ancestor
// fallback and answer reference lookups by entity name.
type Store interface {
	// FieldValue resolves (group, key, attribute) on the entity with
	// nearest-ancestor fallback. The bool is false when the attribute is
	// absent at every level of the chain.
	FieldValue(e *Entity, group Group, key, attr string) (string, bool)

	// IsFieldPresent reports whether the key exists in the group anywhere
	// on the chain, distinguishing "present but falsy" from "absent".
	IsFieldPresent(e *Entity, group Group, key string) bool

	// InheritsFrom reports whether the entity is or descends from the
	// named ancestor.
	InheritsFrom(e *Entity, ancestor string) bool

	// ResolveReference looks an entity up by name, as used for inventory
	// and projectile references.
	ResolveReference(name string) (*Entity, bool)
}
