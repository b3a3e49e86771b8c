package translate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolut/themectl/internal/domain/color"
	"github.com/avolut/themectl/internal/domain/entity"
)

func TestFor(t *testing.T) {
	for _, toolkit := range entity.AllToolkits {
		tr, ok := For(toolkit)
		require.True(t, ok, "missing translator for %s", toolkit)
		assert.Equal(t, toolkit, tr.Toolkit())
		assert.NotEmpty(t, tr.Rules())
	}

	_, ok := For(entity.ToolkitID("motif"))
	assert.False(t, ok)
}

func TestFromNative_AliasTieBreak(t *testing.T) {
	// Both names target accent-primary; accent_bg_color is declared later in
	// the GTK table and must win regardless of map iteration order.
	old := color.New(0x11, 0x22, 0x33)
	modern := color.New(0xaa, 0xbb, 0xcc)

	tr, _ := For(entity.ToolkitGTK)
	for i := 0; i < 50; i++ {
		schema := tr.FromNative("t", map[string]color.Value{
			"theme_selected_bg_color": old,
			"accent_bg_color":         modern,
		})
		got, ok := schema.Get(entity.RoleAccentPrimary)
		require.True(t, ok)
		require.Equal(t, modern, got, "iteration %d", i)
	}
}

func TestFromNative_DropsUnmappedNames(t *testing.T) {
	tr, _ := For(entity.ToolkitGTK)
	schema := tr.FromNative("t", map[string]color.Value{
		"theme_bg_color":      color.New(1, 2, 3),
		"wm_border_color":     color.New(4, 5, 6), // no rule, legitimately dropped
		"scrollbar_slider_bg": color.New(7, 8, 9),
	})
	assert.Equal(t, 1, schema.Len())
}

func TestToNative_OmitsAbsentRoles(t *testing.T) {
	schema := entity.NewSchema("partial")
	schema.Set(entity.RoleSurfacePrimary, color.New(10, 20, 30))

	tr, _ := For(entity.ToolkitQt)
	native := tr.ToNative(schema)

	assert.Equal(t, map[string]color.Value{
		"Window": color.New(10, 20, 30),
	}, native)
}

func TestToNative_EmitsAllAliases(t *testing.T) {
	accent := color.New(0x35, 0x84, 0xe4)
	schema := entity.NewSchema("accented")
	schema.Set(entity.RoleAccentPrimary, accent)

	tr, _ := For(entity.ToolkitGTK)
	native := tr.ToNative(schema)

	assert.Equal(t, accent, native["theme_selected_bg_color"])
	assert.Equal(t, accent, native["accent_bg_color"])
}

func TestRoundTrip(t *testing.T) {
	for _, toolkit := range []entity.ToolkitID{entity.ToolkitGTK, entity.ToolkitAdwaita, entity.ToolkitQt} {
		t.Run(string(toolkit), func(t *testing.T) {
			tr, _ := For(toolkit)

			// One distinct color per role; every alias of a role carries the
			// same value, which is the only case where full reproduction is
			// even possible.
			roleColor := make(map[entity.SemanticRole]color.Value)
			native := make(map[string]color.Value)
			for _, rule := range tr.Rules() {
				v, ok := roleColor[rule.Role]
				if !ok {
					v = color.New(uint8(10+len(roleColor)*7), uint8(200-len(roleColor)*5), 0x40)
					roleColor[rule.Role] = v
				}
				native[rule.Native] = v
			}

			out := tr.ToNative(tr.FromNative("round", native))
			require.Equal(t, native, out)
		})
	}
}

func TestRules_AreCopies(t *testing.T) {
	tr, _ := For(entity.ToolkitGTK)
	rules := tr.Rules()
	rules[0] = Rule{Native: "mutated", Role: entity.RoleHeaderFg}

	fresh := tr.Rules()
	assert.NotEqual(t, "mutated", fresh[0].Native, "Rules must return a defensive copy")
}

func TestTableRolesAreValid(t *testing.T) {
	for _, toolkit := range entity.AllToolkits {
		tr, _ := For(toolkit)
		for _, rule := range tr.Rules() {
			if !rule.Role.Valid() {
				t.Errorf("%s rule %q references unknown role %q", toolkit, rule.Native, rule.Role)
			}
			if rule.Native == "" {
				t.Errorf("%s table has a rule with empty native name (role %s)", toolkit, rule.Role)
			}
		}
	}
}

func ExampleTranslator_FromNative() {
	tr, _ := For(entity.ToolkitGTK)
	bg, _ := color.Parse("#242424")
	schema := tr.FromNative("example", map[string]color.Value{
		"theme_bg_color": bg,
	})
	v, _ := schema.Get(entity.RoleSurfacePrimary)
	fmt.Println(v)
	// Output: #242424
}
