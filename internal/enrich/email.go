package enrich

import (
	"regexp"
	"strings"

	"github.com/yt-prospector/internal/models"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// ExtractEmail scans the titles and snippets of a result batch for the first
// syntactically valid email address. Best effort: no deliverability check, and
// any address after the first is ignored. Returns the NotFound sentinel when
// nothing matches.
func ExtractEmail(results []models.SearchResult) string {
	parts := make([]string, 0, len(results)*2)
	for _, r := range results {
		parts = append(parts, r.Title, r.Snippet)
	}
	if match := emailPattern.FindString(strings.Join(parts, " ")); match != "" {
		return match
	}
	return models.NotFound
}
