// Package blueprint models the object-definition tree the stats engine
// reads from: entities arranged in a single-inheritance hierarchy, each
// holding named groups of key/attribute data that override the nearest
// ancestor's values.
package blueprint

import "strconv"

// Group names a category of key/attribute data on an entity.
type Group string

const (
	GroupTag         Group = "tag"
	GroupPart        Group = "part"
	GroupStat        Group = "stat"
	GroupSkill       Group = "skill"
	GroupProperty    Group = "property"
	GroupIntProperty Group = "intproperty"
	GroupBuilder     Group = "builder"
	GroupXTag        Group = "xtag"
	GroupMutation    Group = "mutation"
	GroupInventory   Group = "inventoryobject"
)

// Mutation is a mutation attached to an entity, with the auxiliary fields
// some mutations carry.
type Mutation struct {
	Name      string
	Level     int
	GasObject string
	Phase     string
}

// InventoryEntry is one inventory item reference on an entity. Count and
// Chance keep the raw string form; absent attributes default to "1" and
// "100" respectively.
type InventoryEntry struct {
	Name   string
	Count  string
	Chance string
}

// groupData keeps keys in definition order so derived text properties
// (charge function labels, on-eat effects) come out deterministically.
type groupData struct {
	order []string
	keys  map[string]map[string]string
}

func (g *groupData) set(key, attr, value string) {
	if g.keys == nil {
		g.keys = make(map[string]map[string]string)
	}
	if _, ok := g.keys[key]; !ok {
		g.keys[key] = make(map[string]string)
		g.order = append(g.order, key)
	}
	if attr != "" {
		g.keys[key][attr] = value
	}
}

// Entity is a node in the definition tree. Entities are built once when
// the definition database loads and must be treated as read-only
// afterwards; every accessor is a pure read, so concurrent use is safe.
type Entity struct {
	Name   string
	Parent *Entity

	groups map[Group]*groupData
}

// New creates an entity under the given parent. A nil parent makes a root.
func New(name string, parent *Entity) *Entity {
	return &Entity{
		Name:   name,
		Parent: parent,
		groups: make(map[Group]*groupData),
	}
}

// Set records a field during construction and returns the entity for
// chaining. It must not be called once the entity is in use.
func (e *Entity) Set(group Group, key, attr, value string) *Entity {
	g, ok := e.groups[group]
	if !ok {
		g = &groupData{}
		e.groups[group] = g
	}
	g.set(key, attr, value)
	return e
}

// Mark records a key with no attributes, such as a bare part.
func (e *Entity) Mark(group Group, key string) *Entity {
	return e.Set(group, key, "", "")
}

// FieldValue resolves (group, key, attr) against this entity, falling back
// to the nearest ancestor that defines it. The second return is false when
// no level of the chain defines the attribute, which is distinct from an
// empty value.
func (e *Entity) FieldValue(group Group, key, attr string) (string, bool) {
	for node := e; node != nil; node = node.Parent {
		if g, ok := node.groups[group]; ok {
			if attrs, ok := g.keys[key]; ok {
				if v, ok := attrs[attr]; ok {
					return v, true
				}
			}
		}
	}
	return "", false
}

// OwnFieldValue resolves (group, key, attribute) on the entity itself,
// with no ancestor fallback. Callers use it where an entity's own data
// must take precedence over a value inherited down the chain.
func (e *Entity) OwnFieldValue(group Group, key, attr string) (string, bool) {
	if g, ok := e.groups[group]; ok {
		if attrs, ok := g.keys[key]; ok {
			if v, ok := attrs[attr]; ok {
				return v, true
			}
		}
	}
	return "", false
}

// IsFieldPresent reports whether any level of the chain defines the key at
// all, regardless of its attributes or their values.
func (e *Entity) IsFieldPresent(group Group, key string) bool {
	for node := e; node != nil; node = node.Parent {
		if g, ok := node.groups[group]; ok {
			if _, ok := g.keys[key]; ok {
				return true
			}
		}
	}
	return false
}

// InheritsFrom reports whether the entity is, or descends from, the named
// entity.
func (e *Entity) InheritsFrom(ancestor string) bool {
	for node := e; node != nil; node = node.Parent {
		if node.Name == ancestor {
			return true
		}
	}
	return false
}

// Keys returns the merged key list for a group across the inheritance
// chain, ancestor definitions first, each key once.
func (e *Entity) Keys(group Group) []string {
	var chain []*Entity
	for node := e; node != nil; node = node.Parent {
		chain = append(chain, node)
	}

	var out []string
	seen := make(map[string]struct{})
	for i := len(chain) - 1; i >= 0; i-- {
		if g, ok := chain[i].groups[group]; ok {
			for _, key := range g.order {
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, key)
			}
		}
	}
	return out
}

// PartNames returns the merged part names on the entity.
func (e *Entity) PartNames() []string {
	return e.Keys(GroupPart)
}

// Mutations returns the merged mutation list, nearest-ancestor values
// overridden per mutation name.
func (e *Entity) Mutations() []Mutation {
	var out []Mutation
	for _, name := range e.Keys(GroupMutation) {
		m := Mutation{Name: name}
		if v, ok := e.FieldValue(GroupMutation, name, "Level"); ok {
			m.Level = atoiOrZero(v)
		}
		m.GasObject, _ = e.FieldValue(GroupMutation, name, "GasObject")
		m.Phase, _ = e.FieldValue(GroupMutation, name, "Phase")
		out = append(out, m)
	}
	return out
}

// Inventory returns the merged inventory entries, including placeholder
// entries (names beginning with '*', '#', or '@'); callers decide whether
// to skip those.
func (e *Entity) Inventory() []InventoryEntry {
	var out []InventoryEntry
	for _, name := range e.Keys(GroupInventory) {
		entry := InventoryEntry{Name: name, Count: "1", Chance: "100"}
		if v, ok := e.FieldValue(GroupInventory, name, "Number"); ok {
			entry.Count = v
		}
		if v, ok := e.FieldValue(GroupInventory, name, "Chance"); ok {
			entry.Chance = v
		}
		out = append(out, entry)
	}
	return out
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
