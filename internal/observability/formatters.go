// Package observability provides formatted output for the non-interactive CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/pitchkraft/internal/present"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxDescriptionLines caps the description inside a result box
	maxDescriptionLines = 6
)

// Printer handles formatted output for the generate command
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines are
// wrapped at word boundaries.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %-*s │\n", inner, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintView outputs the notice or the result cards of a rendered view.
func (p *Printer) PrintView(v present.View) {
	if v.Notice != nil {
		p.printBox(strings.ToUpper(v.Notice.Title), v.Notice.Message)
		return
	}
	if v.Busy {
		p.printLine(v.SubmitLabel)
		return
	}
	for _, card := range v.Cards {
		p.PrintCard(card)
	}
}

// PrintCard outputs one result: the job summary, its portfolio links and the email.
func (p *Printer) PrintCard(card present.Card) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience: %s\n", card.Experience))
	if card.SkillsSummary != "" {
		sb.WriteString(card.SkillsSummary + "\n")
	}
	sb.WriteString(card.MatchBadge + "\n\n")

	desc := strings.Split(card.Description, "\n")
	if len(desc) > maxDescriptionLines {
		desc = append(desc[:maxDescriptionLines], "...")
	}
	sb.WriteString(strings.Join(desc, "\n"))
	sb.WriteString("\n\n")

	if card.NoMatches {
		sb.WriteString(present.NoMatchesText)
	} else {
		for _, link := range card.Links {
			sb.WriteString(fmt.Sprintf("%d. %s\n", link.Position+1, link.URL))
		}
	}

	p.printBox(fmt.Sprintf("#%d  %s", card.Index+1, card.Role), strings.TrimSuffix(sb.String(), "\n"))
	p.printBox("EMAIL", card.Email)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printLine(s string) {
	fmt.Fprintln(p.out, s)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// wrap splits line into pieces of at most width runes, breaking on spaces when
// it can and hard-splitting words longer than width.
func wrap(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}

	var out []string
	var cur []rune
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = nil
			}
			out = append(out, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			out = append(out, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}
