package translate

import "github.com/avolut/themectl/internal/domain/entity"

// gtkRules maps the classic GTK3/GTK4 @define-color vocabulary. Aliases are
// deliberate: accent_bg_color is the modern spelling of
// theme_selected_bg_color, so it is declared later and wins when both appear.
var gtkRules = []Rule{
	{"theme_bg_color", entity.RoleSurfacePrimary},
	{"theme_base_color", entity.RoleSurfaceSecondary},
	{"popover_bg_color", entity.RoleSurfaceElevated},

	{"theme_fg_color", entity.RoleTextPrimary},
	{"theme_text_color", entity.RoleTextPrimary},
	{"insensitive_fg_color", entity.RoleTextSecondary},

	{"theme_selected_bg_color", entity.RoleAccentPrimary},
	{"accent_bg_color", entity.RoleAccentPrimary},
	{"theme_selected_fg_color", entity.RoleAccentText},
	{"accent_fg_color", entity.RoleAccentText},

	{"success_color", entity.RoleStateSuccess},
	{"warning_color", entity.RoleStateWarning},
	{"error_color", entity.RoleStateError},

	{"theme_unfocused_bg_color", entity.RoleInteractiveNormal},
	{"insensitive_bg_color", entity.RoleInteractiveDisabled},

	{"borders", entity.RoleBorderDefault},
	{"unfocused_borders", entity.RoleBorderSubtle},

	{"link_color", entity.RoleLinkDefault},
	{"visited_link_color", entity.RoleLinkVisited},

	{"headerbar_bg_color", entity.RoleHeaderBg},
	{"headerbar_fg_color", entity.RoleHeaderFg},
}

var gtkTranslator = New(entity.ToolkitGTK, gtkRules)
