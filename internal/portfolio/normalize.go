package portfolio

import (
	"slices"
	"strings"
)

// phraseNormalizations folds multi-word spellings into one token. Words are
// compared whole, so "django language" is left alone.
var phraseNormalizations = []struct {
	words []string
	token string
}{
	{[]string{"go", "lang"}, "go"},
	{[]string{"react", "js"}, "react"},
	{[]string{"vue", "js"}, "vue"},
	{[]string{"node", "js"}, "node"},
	{[]string{"next", "js"}, "nextjs"},
	{[]string{"ruby", "on", "rails"}, "rails"},
}

// tokenNormalizations maps common token variants to one canonical token.
var tokenNormalizations = map[string]string{
	"golang":   "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"reactjs":  "react",
	"vuejs":    "vue",
	"nodejs":   "node",
	"postgres": "postgresql",
	"psql":     "postgresql",
	"py":       "python",
}

// NormalizeSkill returns the canonical tokens of a skill or tech-stack string,
// joined by spaces. It is what matching compares.
func NormalizeSkill(s string) string {
	return strings.Join(tokens(s), " ")
}

func normalizeToken(t string) string {
	if canonical, ok := tokenNormalizations[t]; ok {
		return canonical
	}
	return t
}

func foldPhrases(words []string) []string {
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		n, token := matchPhrase(words[i:])
		if n == 0 {
			out = append(out, words[i])
			i++
			continue
		}
		out = append(out, token)
		i += n
	}
	return out
}

func matchPhrase(words []string) (int, string) {
	for _, p := range phraseNormalizations {
		if len(words) >= len(p.words) && slices.Equal(words[:len(p.words)], p.words) {
			return len(p.words), p.token
		}
	}
	return 0, ""
}
