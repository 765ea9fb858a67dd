package lexer

import (
	"strings"
)

// cutset is the whitespace trimmed from both ends of a line.
const cutset = " \t\r\n"

// Clean removes leading and trailing whitespace.
func Clean(line string) string {
	return strings.Trim(line, cutset)
}

// StripComments removes a `//` comment, then a `;` comment.
func StripComments(line string) string {
	line, _, _ = strings.Cut(line, "//")
	line, _, _ = strings.Cut(line, ";")
	return line
}

// Normalize cleans a line and strips its comments.
//
// The result may carry trailing whitespace that preceded the comment.
func Normalize(line string) string {
	return StripComments(Clean(line))
}

// Tokenize splits a line on whitespace, removing one trailing comma
// from each token. Empty tokens are dropped.
func Tokenize(line string) (tokens []string) {
	tokens = []string{}
	for _, word := range strings.Fields(line) {
		word = strings.TrimSuffix(word, ",")
		if len(word) == 0 {
			continue
		}
		tokens = append(tokens, word)
	}

	return
}
