package translate

import "github.com/avolut/themectl/internal/domain/entity"

// qtRules maps the Qt palette role names used by qt5ct/qt6ct color schemes.
// Qt has no success/warning palette roles; those semantic roles stay
// unmapped and round-trip through Qt is lossy for them.
var qtRules = []Rule{
	{"Window", entity.RoleSurfacePrimary},
	{"Base", entity.RoleSurfaceSecondary},
	{"AlternateBase", entity.RoleSurfaceElevated},
	{"ToolTipBase", entity.RoleSurfaceElevated},

	{"WindowText", entity.RoleTextPrimary},
	{"Text", entity.RoleTextPrimary},
	{"PlaceholderText", entity.RoleTextSecondary},

	{"Highlight", entity.RoleAccentPrimary},
	{"HighlightedText", entity.RoleAccentText},

	{"BrightText", entity.RoleStateError},

	{"Button", entity.RoleInteractiveNormal},
	{"Midlight", entity.RoleInteractiveHover},
	{"Mid", entity.RoleInteractivePressed},
	{"Dark", entity.RoleInteractiveDisabled},

	{"Shadow", entity.RoleBorderStrong},
	{"Light", entity.RoleBorderSubtle},

	{"Link", entity.RoleLinkDefault},
	{"LinkVisited", entity.RoleLinkVisited},
}

var qtTranslator = New(entity.ToolkitQt, qtRules)
