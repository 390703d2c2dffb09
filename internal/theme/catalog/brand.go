package catalog

// Variable names shared by every preset.
const (
	VarBackground          = "--background"
	VarForeground          = "--foreground"
	VarCard                = "--card"
	VarCardForeground      = "--card-foreground"
	VarPopover             = "--popover"
	VarPopoverForeground   = "--popover-foreground"
	VarBorder              = "--border"
	VarInput               = "--input"
	VarRing                = "--ring"
	VarDestructive         = "--destructive"
	VarSidebar             = "--sidebar"
	VarSidebarForeground   = "--sidebar-foreground"
	VarSidebarBorder       = "--sidebar-border"
	VarPrimary             = "--brand-primary"
	VarPrimaryForeground   = "--brand-primary-foreground"
	VarSecondary           = "--brand-secondary"
	VarSecondaryForeground = "--brand-secondary-foreground"
	VarAccent              = "--brand-accent"
	VarAccentForeground    = "--brand-accent-foreground"
	VarMuted               = "--brand-muted"
	VarMutedForeground     = "--brand-muted-foreground"
)

// BrandColor is a user-overridable variable with its display label.
type BrandColor struct {
	Name     string `json:"name"`
	Variable string `json:"variable"`
}

var brandColors = []BrandColor{
	{Name: "Primary", Variable: VarPrimary},
	{Name: "Primary Foreground", Variable: VarPrimaryForeground},
	{Name: "Secondary", Variable: VarSecondary},
	{Name: "Secondary Foreground", Variable: VarSecondaryForeground},
	{Name: "Accent", Variable: VarAccent},
	{Name: "Accent Foreground", Variable: VarAccentForeground},
	{Name: "Muted", Variable: VarMuted},
	{Name: "Muted Foreground", Variable: VarMutedForeground},
}

// BrandColors returns the overridable brand variables in display order.
func BrandColors() []BrandColor {
	out := make([]BrandColor, len(brandColors))
	copy(out, brandColors)
	return out
}

// IsBrandVariable reports whether name may carry a color override.
func IsBrandVariable(name string) bool {
	for _, b := range brandColors {
		if b.Variable == name {
			return true
		}
	}
	return false
}
