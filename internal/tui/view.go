package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/pitchkraft/internal/present"
)

const descriptionLines = 6

// View implements tea.Model.
func (m *Model) View() string {
	var sections []string

	sections = append(sections,
		m.styles.badge.Render("AI OUTREACH AUTOMATION"),
		m.styles.title.Render("PitchKraft"),
		m.styles.tagline.Render("Turn any job URL into a hyper-personalized cold email in seconds."),
		"",
		m.renderInput(),
	)

	if n := m.view.Notice; n != nil {
		body := m.styles.noticeHead.Render(n.Title) + "\n" + n.Message
		sections = append(sections, m.styles.notice.Width(m.width-4).Render(body))
	}

	for i, card := range m.view.Cards {
		sections = append(sections, m.renderCard(card, m.focus == i+1))
	}

	sections = append(sections, m.styles.help.Render("enter generate • tab focus • ctrl+y copy email • alt+n/alt+p select link • ctrl+o open link • esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderInput() string {
	label := m.view.SubmitLabel
	button := m.styles.button.Render(label)
	if m.view.Busy {
		button = m.styles.buttonBusy.Render(m.spinner.View() + " " + label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.styles.inputBox.Render(m.input.View()), " ", button)
}

func (m *Model) renderCard(card present.Card, focused bool) string {
	width := m.width - 4
	half := max(30, width/2-2)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width-24).Render(
			m.styles.role.Render(card.Role)+"\n"+
				m.styles.expTag.Render(card.Experience)+" "+m.styles.muted.Render(card.SkillsSummary),
		),
		m.styles.matches.Render(card.MatchBadge),
	)

	emailHead := m.styles.section.Render("GENERATED EMAIL")
	if m.drafts.Edited(card.Index) {
		emailHead += m.styles.muted.Render(" (edited)")
	}
	left := emailHead + "\n" + m.editors[card.Index].View()

	var links []string
	for _, l := range card.Links {
		style := m.styles.link
		marker := "  "
		if focused && m.links[card.Index] == l.Position {
			style = m.styles.linkActive
			marker = "› "
		}
		links = append(links, marker+style.Render(l.URL))
	}
	if card.NoMatches {
		links = append(links, m.styles.muted.Render(present.NoMatchesText))
	}

	right := strings.Join([]string{
		m.styles.section.Render("PORTFOLIO INCLUSIONS"),
		strings.Join(links, "\n"),
		"",
		m.styles.section.Render("JOB SUMMARY"),
		m.styles.muted.Width(half).MaxHeight(descriptionLines).Render(card.Description),
	}, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left), "  ",
		lipgloss.NewStyle().Width(half).Render(right),
	)

	style := m.styles.card
	if focused {
		style = m.styles.cardFocus
	}
	return style.Width(width).Render(fmt.Sprintf("%s\n\n%s", header, body))
}
