package editor

import (
	"strings"

	"github.com/inkmark/inkmark/internal/grapheme"
)

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// GraphemeCount returns the number of user-perceived characters in text,
// counting line breaks.
func GraphemeCount(text string) int {
	return grapheme.Count(text)
}
