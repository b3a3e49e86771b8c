package entity

import (
	"sort"

	"github.com/avolut/themectl/internal/domain/color"
)

// Schema is a canonical color schema: a named, partial mapping from semantic
// roles to concrete colors. It is the toolkit-independent lingua franca
// between discovery and the per-toolkit translators. Unset roles are absent
// from the map, never present with a zero value.
//
// A Schema is a value object: construct it once per apply attempt and treat
// it as immutable afterwards.
type Schema struct {
	Name   string
	Colors map[SemanticRole]color.Value
}

// NewSchema creates an empty schema with the given name.
func NewSchema(name string) Schema {
	return Schema{Name: name, Colors: make(map[SemanticRole]color.Value)}
}

// Get returns the color for a role and whether the role is set.
func (s Schema) Get(role SemanticRole) (color.Value, bool) {
	v, ok := s.Colors[role]
	return v, ok
}

// Set assigns a color to a role, replacing any previous assignment.
func (s Schema) Set(role SemanticRole, v color.Value) {
	s.Colors[role] = v
}

// Roles returns the set roles in stable (sorted) order.
func (s Schema) Roles() []SemanticRole {
	roles := make([]SemanticRole, 0, len(s.Colors))
	for r := range s.Colors {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Len returns the number of set roles.
func (s Schema) Len() int {
	return len(s.Colors)
}
