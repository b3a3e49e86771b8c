package entity

// SemanticRole names a color purpose independent of any toolkit's variable
// vocabulary. The set is closed: translators map native variables onto these
// roles and nothing else.
type SemanticRole string

const (
	RoleSurfacePrimary   SemanticRole = "surface-primary"
	RoleSurfaceSecondary SemanticRole = "surface-secondary"
	RoleSurfaceElevated  SemanticRole = "surface-elevated"

	RoleTextPrimary   SemanticRole = "text-primary"
	RoleTextSecondary SemanticRole = "text-secondary"

	RoleAccentPrimary SemanticRole = "accent-primary"
	RoleAccentText    SemanticRole = "accent-text"

	RoleStateSuccess SemanticRole = "state-success"
	RoleStateWarning SemanticRole = "state-warning"
	RoleStateError   SemanticRole = "state-error"

	RoleInteractiveNormal   SemanticRole = "interactive-normal"
	RoleInteractiveHover    SemanticRole = "interactive-hover"
	RoleInteractivePressed  SemanticRole = "interactive-pressed"
	RoleInteractiveDisabled SemanticRole = "interactive-disabled"

	RoleBorderDefault SemanticRole = "border-default"
	RoleBorderStrong  SemanticRole = "border-strong"
	RoleBorderSubtle  SemanticRole = "border-subtle"

	RoleLinkDefault SemanticRole = "link-default"
	RoleLinkVisited SemanticRole = "link-visited"

	RoleHeaderBg SemanticRole = "header-bg"
	RoleHeaderFg SemanticRole = "header-fg"
)

// AllRoles lists every semantic role.
var AllRoles = []SemanticRole{
	RoleSurfacePrimary, RoleSurfaceSecondary, RoleSurfaceElevated,
	RoleTextPrimary, RoleTextSecondary,
	RoleAccentPrimary, RoleAccentText,
	RoleStateSuccess, RoleStateWarning, RoleStateError,
	RoleInteractiveNormal, RoleInteractiveHover, RoleInteractivePressed, RoleInteractiveDisabled,
	RoleBorderDefault, RoleBorderStrong, RoleBorderSubtle,
	RoleLinkDefault, RoleLinkVisited,
	RoleHeaderBg, RoleHeaderFg,
}

// Valid reports whether the role is part of the closed set.
func (r SemanticRole) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r SemanticRole) String() string {
	return string(r)
}
