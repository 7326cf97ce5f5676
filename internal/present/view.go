// Package present maps workflow state to the rendered view: the submit control,
// the error notice and one card per generation result.
package present

import (
	"fmt"
	"strings"

	"github.com/jonathan/pitchkraft/internal/types"
	"github.com/jonathan/pitchkraft/internal/workflow"
)

const (
	// MaxSummarySkills is how many skills the one-line summary shows.
	MaxSummarySkills = 5

	// SubmitLabel is the idle label of the submit control.
	SubmitLabel = "Generate"
	// BusyLabel replaces SubmitLabel while a request is in flight.
	BusyLabel = "Crafting..."
	// NoticeTitle heads the error notice.
	NoticeTitle = "Generation Failed"
	// NoMatchesText is shown instead of an empty link list.
	NoMatchesText = "No specific portfolio links matched."
)

// View is everything the screen shows for one workflow state.
type View struct {
	SubmitLabel    string
	SubmitDisabled bool
	Busy           bool
	Notice         *Notice
	Cards          []Card
}

// Notice is the single error notice shown in the failed phase.
type Notice struct {
	Title   string
	Message string
}

// Card renders one generation result.
type Card struct {
	Index         int
	Role          string
	Experience    string
	Skills        []string // at most MaxSummarySkills, in original order
	SkillsSummary string
	MatchCount    int
	MatchBadge    string
	Description   string
	Links         []LinkRow
	NoMatches     bool
	Email         string
}

// LinkRow is one actionable portfolio link. Position is zero-based.
type LinkRow struct {
	Position int
	URL      string
}

// Render derives the view from a workflow state. It holds no state of its own.
func Render(s workflow.State) View {
	v := View{SubmitLabel: SubmitLabel}

	switch s.Phase {
	case workflow.PhaseInFlight:
		v.Busy = true
		v.SubmitDisabled = true
		v.SubmitLabel = BusyLabel
	case workflow.PhaseFailed:
		v.Notice = &Notice{Title: NoticeTitle, Message: s.Error}
	case workflow.PhaseSucceeded:
		v.Cards = make([]Card, 0, len(s.Results))
		for i, r := range s.Results {
			v.Cards = append(v.Cards, NewCard(i, r))
		}
	}

	return v
}

// NewCard builds the card for the result at index.
func NewCard(index int, r types.GenerationResult) Card {
	skills := r.Job.Skills
	if len(skills) > MaxSummarySkills {
		skills = skills[:MaxSummarySkills]
	}
	skills = append([]string(nil), skills...)

	links := make([]LinkRow, 0, len(r.Links))
	for i, l := range r.Links {
		links = append(links, LinkRow{Position: i, URL: l})
	}

	return Card{
		Index:         index,
		Role:          r.Job.Role,
		Experience:    r.Job.Experience,
		Skills:        skills,
		SkillsSummary: SkillsSummary(r.Job.Skills),
		MatchCount:    len(r.Links),
		MatchBadge:    fmt.Sprintf("%d Portfolio Matches", len(r.Links)),
		Description:   r.Job.Description,
		Links:         links,
		NoMatches:     len(r.Links) == 0,
		Email:         r.Email,
	}
}

// SkillsSummary is the one-line "Looking for" summary of the first MaxSummarySkills skills.
func SkillsSummary(skills []string) string {
	if len(skills) > MaxSummarySkills {
		skills = skills[:MaxSummarySkills]
	}
	return "Looking for: " + strings.Join(skills, ", ")
}
