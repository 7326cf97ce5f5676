package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	badge      lipgloss.Style
	title      lipgloss.Style
	tagline    lipgloss.Style
	inputBox   lipgloss.Style
	button     lipgloss.Style
	buttonBusy lipgloss.Style
	notice     lipgloss.Style
	noticeHead lipgloss.Style
	card       lipgloss.Style
	cardFocus  lipgloss.Style
	role       lipgloss.Style
	expTag     lipgloss.Style
	muted      lipgloss.Style
	matches    lipgloss.Style
	section    lipgloss.Style
	link       lipgloss.Style
	linkActive lipgloss.Style
	help       lipgloss.Style
}

func defaultStyles() styles {
	indigo := lipgloss.Color("63")
	neutral := lipgloss.Color("245")
	dim := lipgloss.Color("240")

	return styles{
		badge:      lipgloss.NewStyle().Foreground(indigo).Border(lipgloss.RoundedBorder()).BorderForeground(indigo).Padding(0, 1),
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		tagline:    lipgloss.NewStyle().Foreground(neutral),
		inputBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		button:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(indigo).Padding(0, 2),
		buttonBusy: lipgloss.NewStyle().Foreground(neutral).Background(lipgloss.Color("236")).Padding(0, 2),
		notice:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("52")).Foreground(lipgloss.Color("217")).Padding(0, 1),
		noticeHead: lipgloss.NewStyle().Bold(true),
		card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		cardFocus:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(indigo).Padding(0, 1),
		role:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		expTag:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Padding(0, 1),
		muted:      lipgloss.NewStyle().Foreground(neutral),
		matches:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		section:    lipgloss.NewStyle().Bold(true).Foreground(neutral),
		link:       lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		linkActive: lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Underline(true).Bold(true),
		help:       lipgloss.NewStyle().Foreground(dim),
	}
}
