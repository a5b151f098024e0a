package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. The accent matches the publication's masthead red.
var (
	ColorAccent = lipgloss.Color("#8C0004")
	ColorText   = lipgloss.Color("#D8D4CF")
	ColorMuted  = lipgloss.Color("#7E7A75")
	ColorGold   = lipgloss.Color("#D4AF37")
	ColorGreen  = lipgloss.Color("#A6E3A1")
	ColorRed    = lipgloss.Color("#F38BA8")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	RankStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	ChipStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ChipActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorAccent).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	UserMsgStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	AssistantMsgStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)
