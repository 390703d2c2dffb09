package catalog

// palette is the compact form a preset variant is written in; variables
// expands it to the CSS variable map.
type palette struct {
	background, foreground           string
	card, popover                    string
	border, input, ring, destructive string
	sidebar, sidebarBorder           string
	primary, primaryFg               string
	secondary, secondaryFg           string
	accent, accentFg                 string
	muted, mutedFg                   string
}

func (p palette) variables() map[string]string {
	return map[string]string{
		VarBackground:          p.background,
		VarForeground:          p.foreground,
		VarCard:                p.card,
		VarCardForeground:      p.foreground,
		VarPopover:             p.popover,
		VarPopoverForeground:   p.foreground,
		VarBorder:              p.border,
		VarInput:               p.input,
		VarRing:                p.ring,
		VarDestructive:         p.destructive,
		VarSidebar:             p.sidebar,
		VarSidebarForeground:   p.foreground,
		VarSidebarBorder:       p.sidebarBorder,
		VarPrimary:             p.primary,
		VarPrimaryForeground:   p.primaryFg,
		VarSecondary:           p.secondary,
		VarSecondaryForeground: p.secondaryFg,
		VarAccent:              p.accent,
		VarAccentForeground:    p.accentFg,
		VarMuted:               p.muted,
		VarMutedForeground:     p.mutedFg,
	}
}

var (
	neutralLight = palette{
		background: "oklch(1 0 0)", foreground: "oklch(0.145 0 0)",
		card: "oklch(1 0 0)", popover: "oklch(1 0 0)",
		border: "oklch(0.922 0 0)", input: "oklch(0.922 0 0)",
		ring: "oklch(0.708 0 0)", destructive: "oklch(0.577 0.245 27.325)",
		sidebar: "oklch(0.985 0 0)", sidebarBorder: "oklch(0.922 0 0)",
		primary: "oklch(0.205 0 0)", primaryFg: "oklch(0.985 0 0)",
		secondary: "oklch(0.97 0 0)", secondaryFg: "oklch(0.205 0 0)",
		accent: "oklch(0.97 0 0)", accentFg: "oklch(0.205 0 0)",
		muted: "oklch(0.97 0 0)", mutedFg: "oklch(0.556 0 0)",
	}
	neutralDark = palette{
		background: "oklch(0.145 0 0)", foreground: "oklch(0.985 0 0)",
		card: "oklch(0.205 0 0)", popover: "oklch(0.205 0 0)",
		border: "oklch(1 0 0 / 10%)", input: "oklch(1 0 0 / 15%)",
		ring: "oklch(0.556 0 0)", destructive: "oklch(0.704 0.191 22.216)",
		sidebar: "oklch(0.205 0 0)", sidebarBorder: "oklch(1 0 0 / 10%)",
		primary: "oklch(0.922 0 0)", primaryFg: "oklch(0.205 0 0)",
		secondary: "oklch(0.269 0 0)", secondaryFg: "oklch(0.985 0 0)",
		accent: "oklch(0.269 0 0)", accentFg: "oklch(0.985 0 0)",
		muted: "oklch(0.269 0 0)", mutedFg: "oklch(0.708 0 0)",
	}
)

// tinted returns base with the primary pair and ring replaced.
func tinted(base palette, primary, primaryFg string) palette {
	base.primary = primary
	base.primaryFg = primaryFg
	base.ring = primary
	return base
}

func shadcnPreset(id, name string, light, dark palette) Preset {
	return Preset{ID: id, DisplayName: name, Light: light.variables(), Dark: dark.variables()}
}

func shadcnPresets() []Preset {
	return []Preset{
		shadcnPreset("neutral", "Neutral", neutralLight, neutralDark),
		shadcnPreset("rose", "Rose",
			tinted(neutralLight, "oklch(0.645 0.246 16.439)", "oklch(0.969 0.015 12.422)"),
			tinted(neutralDark, "oklch(0.645 0.246 16.439)", "oklch(0.969 0.015 12.422)")),
		shadcnPreset("red", "Red",
			tinted(neutralLight, "oklch(0.637 0.237 25.331)", "oklch(0.971 0.013 17.38)"),
			tinted(neutralDark, "oklch(0.637 0.237 25.331)", "oklch(0.971 0.013 17.38)")),
		shadcnPreset("orange", "Orange",
			tinted(neutralLight, "oklch(0.705 0.213 47.604)", "oklch(0.98 0.016 73.684)"),
			tinted(neutralDark, "oklch(0.646 0.222 41.116)", "oklch(0.98 0.016 73.684)")),
		shadcnPreset("green", "Green",
			tinted(neutralLight, "oklch(0.723 0.219 149.579)", "oklch(0.982 0.018 155.826)"),
			tinted(neutralDark, "oklch(0.696 0.17 162.48)", "oklch(0.393 0.095 152.535)")),
		shadcnPreset("blue", "Blue",
			tinted(neutralLight, "oklch(0.623 0.214 259.815)", "oklch(0.97 0.014 254.604)"),
			tinted(neutralDark, "oklch(0.546 0.245 262.881)", "oklch(0.379 0.146 265.522)")),
		shadcnPreset("yellow", "Yellow",
			tinted(neutralLight, "oklch(0.795 0.184 86.047)", "oklch(0.421 0.095 57.708)"),
			tinted(neutralDark, "oklch(0.795 0.184 86.047)", "oklch(0.421 0.095 57.708)")),
		shadcnPreset("violet", "Violet",
			tinted(neutralLight, "oklch(0.606 0.25 292.717)", "oklch(0.969 0.016 293.756)"),
			tinted(neutralDark, "oklch(0.541 0.281 293.009)", "oklch(0.969 0.016 293.756)")),
	}
}

func tweakcnPresets() []Preset {
	return []Preset{
		{
			ID: "modern-minimal", DisplayName: "Modern Minimal",
			Light: palette{
				background: "#ffffff", foreground: "#333333", card: "#ffffff", popover: "#ffffff",
				border: "#e5e7eb", input: "#e5e7eb", ring: "#3b82f6", destructive: "#ef4444",
				sidebar: "#f9fafb", sidebarBorder: "#e5e7eb",
				primary: "#3b82f6", primaryFg: "#ffffff", secondary: "#f3f4f6", secondaryFg: "#4b5563",
				accent: "#e0f2fe", accentFg: "#1e3a8a", muted: "#f9fafb", mutedFg: "#6b7280",
			}.variables(),
			Dark: palette{
				background: "#171717", foreground: "#e5e5e5", card: "#262626", popover: "#262626",
				border: "#404040", input: "#404040", ring: "#3b82f6", destructive: "#ef4444",
				sidebar: "#171717", sidebarBorder: "#404040",
				primary: "#3b82f6", primaryFg: "#ffffff", secondary: "#262626", secondaryFg: "#e5e5e5",
				accent: "#1e3a8a", accentFg: "#bfdbfe", muted: "#262626", mutedFg: "#a3a3a3",
			}.variables(),
		},
		{
			ID: "twitter", DisplayName: "Twitter",
			Light: palette{
				background: "#ffffff", foreground: "#0f1419", card: "#f7f8f8", popover: "#ffffff",
				border: "#e1eaef", input: "#f7f9fa", ring: "#1da1f2", destructive: "#f4212e",
				sidebar: "#f7f8f8", sidebarBorder: "#e1e8ed",
				primary: "#1e9df1", primaryFg: "#ffffff", secondary: "#0f1419", secondaryFg: "#ffffff",
				accent: "#e3ecf6", accentFg: "#1e9df1", muted: "#e5e5e6", mutedFg: "#0f1419",
			}.variables(),
			Dark: palette{
				background: "#000000", foreground: "#e7e9ea", card: "#17181c", popover: "#000000",
				border: "#242628", input: "#22303c", ring: "#1da1f2", destructive: "#f4212e",
				sidebar: "#17181c", sidebarBorder: "#38444d",
				primary: "#1c9cf0", primaryFg: "#ffffff", secondary: "#f0f3f4", secondaryFg: "#0f1419",
				accent: "#061622", accentFg: "#1c9cf0", muted: "#181818", mutedFg: "#72767a",
			}.variables(),
		},
		{
			ID: "bubblegum", DisplayName: "Bubblegum",
			Light: palette{
				background: "#f6e6ee", foreground: "#5b5b5b", card: "#fdedc9", popover: "#ffffff",
				border: "#d04f99", input: "#e4e4e4", ring: "#e670ab", destructive: "#f96f70",
				sidebar: "#f8d8ea", sidebarBorder: "#f3e3ea",
				primary: "#d04f99", primaryFg: "#ffffff", secondary: "#8acfd1", secondaryFg: "#333333",
				accent: "#fbe2a7", accentFg: "#333333", muted: "#b2e1eb", mutedFg: "#7a7a7a",
			}.variables(),
			Dark: palette{
				background: "#12242e", foreground: "#f3e3ea", card: "#1c2e38", popover: "#1c2e38",
				border: "#324859", input: "#20333d", ring: "#50afb6", destructive: "#e35ea4",
				sidebar: "#101f28", sidebarBorder: "#324859",
				primary: "#fbe2a7", primaryFg: "#12242e", secondary: "#e4a2b1", secondaryFg: "#12242e",
				accent: "#c67b96", accentFg: "#f3e3ea", muted: "#24272b", mutedFg: "#e4a2b1",
			}.variables(),
		},
		{
			ID: "caffeine", DisplayName: "Caffeine",
			Light: palette{
				background: "#f9f9f9", foreground: "#202020", card: "#fcfcfc", popover: "#fcfcfc",
				border: "#d8d8d8", input: "#d8d8d8", ring: "#644a40", destructive: "#e54d2e",
				sidebar: "#fbfbfb", sidebarBorder: "#ebebeb",
				primary: "#644a40", primaryFg: "#ffffff", secondary: "#ffdfb5", secondaryFg: "#582d1d",
				accent: "#e8e8e8", accentFg: "#202020", muted: "#efefef", mutedFg: "#646464",
			}.variables(),
			Dark: palette{
				background: "#111111", foreground: "#eeeeee", card: "#191919", popover: "#191919",
				border: "#201e18", input: "#484848", ring: "#ffe0c2", destructive: "#e54d2e",
				sidebar: "#18181b", sidebarBorder: "#27272a",
				primary: "#ffe0c2", primaryFg: "#081a1b", secondary: "#393028", secondaryFg: "#ffe0c2",
				accent: "#2a2a2a", accentFg: "#eeeeee", muted: "#222222", mutedFg: "#b4b4b4",
			}.variables(),
		},
		{
			ID: "amethyst-haze", DisplayName: "Amethyst Haze",
			Light: palette{
				background: "#f8f7fa", foreground: "#3d3c4f", card: "#ffffff", popover: "#ffffff",
				border: "#cec9d9", input: "#eae7f0", ring: "#8a79ab", destructive: "#d95c7c",
				sidebar: "#f1eff5", sidebarBorder: "#e0dce8",
				primary: "#8a79ab", primaryFg: "#f8f7fa", secondary: "#dfd9ec", secondaryFg: "#3d3c4f",
				accent: "#e6a5b8", accentFg: "#4b2a3d", muted: "#dcd9e3", mutedFg: "#6b6880",
			}.variables(),
			Dark: palette{
				background: "#1a1823", foreground: "#e0ddef", card: "#232030", popover: "#232030",
				border: "#302c40", input: "#302c40", ring: "#a995c9", destructive: "#e57373",
				sidebar: "#16141e", sidebarBorder: "#2a2738",
				primary: "#a995c9", primaryFg: "#1a1823", secondary: "#5a5370", secondaryFg: "#e0ddef",
				accent: "#372e3f", accentFg: "#f2b8c6", muted: "#242031", mutedFg: "#a09aad",
			}.variables(),
		},
	}
}
