package translate

import "github.com/avolut/themectl/internal/domain/entity"

// adwaitaRules maps the libadwaita named-color vocabulary. The *_bg_color
// state colors are declared before their plain aliases so the plain spelling
// wins when a theme ships both.
var adwaitaRules = []Rule{
	{"window_bg_color", entity.RoleSurfacePrimary},
	{"view_bg_color", entity.RoleSurfaceSecondary},
	{"card_bg_color", entity.RoleSurfaceElevated},
	{"dialog_bg_color", entity.RoleSurfaceElevated},
	{"popover_bg_color", entity.RoleSurfaceElevated},

	{"window_fg_color", entity.RoleTextPrimary},
	{"view_fg_color", entity.RoleTextPrimary},

	{"accent_bg_color", entity.RoleAccentPrimary},
	{"accent_color", entity.RoleAccentPrimary},
	{"accent_fg_color", entity.RoleAccentText},

	{"success_bg_color", entity.RoleStateSuccess},
	{"success_color", entity.RoleStateSuccess},
	{"warning_bg_color", entity.RoleStateWarning},
	{"warning_color", entity.RoleStateWarning},
	{"destructive_bg_color", entity.RoleStateError},
	{"error_bg_color", entity.RoleStateError},
	{"error_color", entity.RoleStateError},

	{"shade_color", entity.RoleBorderSubtle},
	{"headerbar_shade_color", entity.RoleBorderDefault},

	{"headerbar_bg_color", entity.RoleHeaderBg},
	{"headerbar_fg_color", entity.RoleHeaderFg},
}

var adwaitaTranslator = New(entity.ToolkitAdwaita, adwaitaRules)
