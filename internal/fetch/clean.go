package fetch

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern     = regexp.MustCompile(`<[^>]*?>`)
	symbolPattern  = regexp.MustCompile(`[^a-zA-Z0-9+#.,:;!?()'"/&%\-\s]`)
	spacesPattern  = regexp.MustCompile(`[ \t]+`)
	newlinePattern = regexp.MustCompile(`\n{2,}`)
)

// MinContentLength is the shortest text considered a real job posting.
const MinContentLength = 500

// CleanText strips leftover markup, URLs and stray symbols, and collapses whitespace
// so the extractor prompt stays small.
func CleanText(text string) string {
	text = tagPattern.ReplaceAllString(text, " ")
	text = urlPattern.ReplaceAllString(text, "")
	text = symbolPattern.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spacesPattern.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.TrimSpace(newlinePattern.ReplaceAllString(strings.Join(cleaned, "\n"), "\n"))
}

// ShouldUseBrowser reports whether text is too short, which usually means the
// posting is rendered by JavaScript.
func ShouldUseBrowser(text string) bool {
	return len(strings.TrimSpace(text)) < MinContentLength
}
