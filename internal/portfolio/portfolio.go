// Package portfolio matches job skills against a portfolio of tech-stack/link pairs.
package portfolio

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// DefaultLinksPerSkill is how many links a single skill may contribute.
const DefaultLinksPerSkill = 2

// Entry is one portfolio project: the stack it was built with and where to see it.
type Entry struct {
	Techstack string
	Link      string
}

// Store answers link queries for a list of skills.
type Store interface {
	Query(ctx context.Context, skills []string, n int) ([]string, error)
}

// Match ranks entries for each skill and returns the union of the top n links per
// skill, deduplicated, in first-seen order. Entries with no token overlap never match.
func Match(entries []Entry, skills []string, n int) []string {
	if n <= 0 {
		n = DefaultLinksPerSkill
	}

	stacks := make([]map[string]struct{}, len(entries))
	for i, e := range entries {
		stacks[i] = tokenSet(e.Techstack)
	}

	seen := make(map[string]struct{})
	links := []string{}
	for _, skill := range skills {
		want := tokens(skill)
		if len(want) == 0 {
			continue
		}

		type hit struct {
			idx   int
			score int
		}
		var hits []hit
		for i, stack := range stacks {
			if entries[i].Link == "" {
				continue
			}
			score := 0
			for _, t := range want {
				if _, ok := stack[t]; ok {
					score++
				}
			}
			if score > 0 {
				hits = append(hits, hit{idx: i, score: score})
			}
		}
		sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

		taken := 0
		for _, h := range hits {
			if taken == n {
				break
			}
			link := entries[h.idx].Link
			taken++
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
			links = append(links, link)
		}
	}
	return links
}

// MemoryStore serves queries from a fixed entry list.
type MemoryStore struct {
	entries []Entry
}

// NewMemoryStore copies entries into a new store.
func NewMemoryStore(entries []Entry) *MemoryStore {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &MemoryStore{entries: cp}
}

// Len reports how many entries the store holds.
func (s *MemoryStore) Len() int { return len(s.entries) }

// Query implements Store.
func (s *MemoryStore) Query(ctx context.Context, skills []string, n int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Match(s.entries, skills, n), nil
}

// tokens splits s into list items (on commas, slashes and the like), then each
// item into words, folding known phrases before dropping stop words.
func tokens(s string) []string {
	out := []string{}
	for _, item := range strings.FieldsFunc(strings.ToLower(s), isItemSeparator) {
		for _, w := range foldPhrases(strings.FieldsFunc(item, isWordSeparator)) {
			if !stopWords[w] {
				out = append(out, normalizeToken(w))
			}
		}
	}
	return out
}

func isWordSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
}

func isItemSeparator(r rune) bool {
	return isWordSeparator(r) && !unicode.IsSpace(r) && r != '.'
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range tokens(s) {
		set[t] = struct{}{}
	}
	return set
}

var stopWords = map[string]bool{
	"and": true, "or": true, "the": true, "of": true, "with": true, "in": true, "a": true, "an": true,
}
