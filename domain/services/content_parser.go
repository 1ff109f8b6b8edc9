package services

// ContentParser scans tweet text for mention and hashtag tokens. It is a pure
// domain service: a single left-to-right pass, non-overlapping, case
// preserving, no normalization.
type ContentParser struct{}

// NewContentParser creates a content parser
func NewContentParser() *ContentParser {
	return &ContentParser{}
}

// Mentions returns the mention candidates (substrings following '@') in order
// of appearance, duplicates and empty tokens included.
func (p *ContentParser) Mentions(text string) []string {
	return scan(text, '@')
}

// Hashtags returns the hashtag candidates (substrings following '#') in order
// of appearance, duplicates and empty tokens included.
func (p *ContentParser) Hashtags(text string) []string {
	return scan(text, '#')
}

// isBoundary reports whether c terminates a token. Markers themselves are
// boundaries, so "@a@b" yields two tokens and "@@" yields two empty ones.
func isBoundary(c byte) bool {
	return c == '@' || c == '#' || c == ' '
}

// scan collects every token introduced by marker. A token runs from the
// character after the marker up to the next boundary character or end of
// text; an empty run still produces an empty token.
func scan(text string, marker byte) []string {
	var tokens []string
	for i := 0; i < len(text); i++ {
		if text[i] != marker {
			continue
		}
		j := i + 1
		for j < len(text) && !isBoundary(text[j]) {
			j++
		}
		tokens = append(tokens, text[i+1:j])
		// Resume at the boundary: if it is another marker it starts the
		// next token, which the outer loop picks up.
		i = j - 1
	}
	return tokens
}
