package store

import (
	"strings"

	"github.com/bestreads/bestreads/models"
)

// splitLines splits content on "\n" and "\r\n" boundaries. A trailing line
// terminator yields a final empty element, and empty content yields a single
// empty element.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// lineAt returns a pointer to the i-th line, or nil when the file is shorter.
func lineAt(lines []string, i int) *string {
	if i < 0 || i >= len(lines) {
		return nil
	}
	line := lines[i]
	return &line
}

func parseInfo(content string) models.Info {
	lines := splitLines(content)
	return models.Info{
		Title:  lines[0],
		Author: lineAt(lines, 1),
	}
}

func parseReview(content string) models.Review {
	lines := splitLines(content)
	return models.Review{
		Name:   lines[0],
		Rating: lineAt(lines, 1),
		Text:   lineAt(lines, 2),
	}
}
