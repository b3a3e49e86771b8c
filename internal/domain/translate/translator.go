// Package translate maps canonical color schemas to and from each toolkit's
// native color-variable vocabulary.
package translate

import (
	"github.com/avolut/themectl/internal/domain/color"
	"github.com/avolut/themectl/internal/domain/entity"
)

// Rule binds one toolkit-native variable name to a semantic role. Tables are
// ordered lists of rules, not maps: when several native names target the same
// role (toolkits carry redundant aliases), the reverse mapping applies rules
// in declaration order and the last one present wins. That tie-break is part
// of the contract, not an accident of map iteration.
type Rule struct {
	Native string
	Role   entity.SemanticRole
}

// Translator is a stateless bidirectional mapping for one toolkit.
type Translator struct {
	toolkit entity.ToolkitID
	rules   []Rule
}

// New builds a translator from an ordered rule table.
func New(toolkit entity.ToolkitID, rules []Rule) *Translator {
	return &Translator{toolkit: toolkit, rules: rules}
}

// Toolkit returns the toolkit this translator serves.
func (t *Translator) Toolkit() entity.ToolkitID {
	return t.toolkit
}

// Rules exposes the table in declaration order.
func (t *Translator) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// FromNative builds a canonical schema from a toolkit-native color map.
// Native names without a rule are dropped; that loss is deliberate and
// documented. Rules are applied in declaration order, so a later alias for
// the same role overwrites an earlier one.
func (t *Translator) FromNative(name string, native map[string]color.Value) entity.Schema {
	schema := entity.NewSchema(name)
	for _, rule := range t.rules {
		if v, ok := native[rule.Native]; ok {
			schema.Set(rule.Role, v)
		}
	}
	return schema
}

// ToNative renders a schema into the toolkit's vocabulary. Every rule whose
// role is set in the schema emits its native name; roles absent from the
// schema are simply omitted, and handlers must fall back to their toolkit
// defaults for them.
func (t *Translator) ToNative(schema entity.Schema) map[string]color.Value {
	out := make(map[string]color.Value)
	for _, rule := range t.rules {
		if v, ok := schema.Get(rule.Role); ok {
			out[rule.Native] = v
		}
	}
	return out
}

// translators is the per-toolkit registry. Flatpak and Snap propagate GTK
// themes into sandboxes, so they share the GTK vocabulary.
var translators = map[entity.ToolkitID]*Translator{
	entity.ToolkitGTK:     gtkTranslator,
	entity.ToolkitAdwaita: adwaitaTranslator,
	entity.ToolkitQt:      qtTranslator,
	entity.ToolkitFlatpak: New(entity.ToolkitFlatpak, gtkRules),
	entity.ToolkitSnap:    New(entity.ToolkitSnap, gtkRules),
}

// For returns the translator for a toolkit.
func For(toolkit entity.ToolkitID) (*Translator, bool) {
	t, ok := translators[toolkit]
	return t, ok
}
