package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Header          lipgloss.Style
	HeaderTitle     lipgloss.Style
	HeaderValue     lipgloss.Style
	StatusBar       lipgloss.Style
	StatusBarKey    lipgloss.Style
	StatusBarValue  lipgloss.Style
	Tabs            lipgloss.Style
	TabActive       lipgloss.Style
	TabInactive     lipgloss.Style
	FormBorder      lipgloss.Style
	FormBorderFocus lipgloss.Style
	FormLabel       lipgloss.Style
	FormHint        lipgloss.Style
	RowCursor       lipgloss.Style
	ResponseBorder  lipgloss.Style
	ResponseContent lipgloss.Style
	Notification    lipgloss.Style
	Error           lipgloss.Style
	Success         lipgloss.Style
	MethodColors    MethodColors
}

type MethodColors struct {
	GET     lipgloss.Color
	POST    lipgloss.Color
	PUT     lipgloss.Color
	PATCH   lipgloss.Color
	DELETE  lipgloss.Color
	HEAD    lipgloss.Color
	OPTIONS lipgloss.Color
	Default lipgloss.Color
}

// MethodColor picks the accent for a verb, falling back to Default for
// anything unrecognised.
func (m MethodColors) MethodColor(method string) lipgloss.Color {
	switch method {
	case "GET":
		return m.GET
	case "POST":
		return m.POST
	case "PUT":
		return m.PUT
	case "PATCH":
		return m.PATCH
	case "DELETE":
		return m.DELETE
	case "HEAD":
		return m.HEAD
	case "OPTIONS":
		return m.OPTIONS
	}
	return m.Default
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("#7D56F4")
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#dcd7ff"))

	return Theme{
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E1FF")).Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().Foreground(accent).Bold(true),
		HeaderValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#D1CFF6")),
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A1BB")).Padding(0, 1),
		StatusBarKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8B39")).
			Bold(true),
		StatusBarValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#EAEAEA")),
		Tabs:           lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A1BB")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FDFBFF")).
			Background(accent).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5E5A72")).
			Padding(0, 1),
		FormBorder: base.BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#403B59")),
		FormBorderFocus: base.BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		FormLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD46A")).Bold(true),
		FormHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6A86")),
		RowCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1020")).
			Background(lipgloss.Color("#FFD46A")).
			Bold(true),
		ResponseBorder: base.BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5FB3B3")),
		ResponseContent: lipgloss.NewStyle(),
		Notification: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E0DEF4")).
			Background(lipgloss.Color("#433C59")).
			Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6E6E")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#6EF17E")),
		MethodColors: MethodColors{
			GET:     lipgloss.Color("#34d399"),
			POST:    lipgloss.Color("#60a5fa"),
			PUT:     lipgloss.Color("#f59e0b"),
			PATCH:   lipgloss.Color("#14b8a6"),
			DELETE:  lipgloss.Color("#f87171"),
			HEAD:    lipgloss.Color("#a1a1aa"),
			OPTIONS: lipgloss.Color("#c084fc"),
			Default: lipgloss.Color("#9ca3af"),
		},
	}
}
