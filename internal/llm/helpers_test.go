package llm

import (
	"strings"
	"unicode"
)

// wordTokenizer treats every whitespace-separated word as one token.
type wordTokenizer struct{}

func (wordTokenizer) CountTokens(text string) (int, error) {
	return len(strings.Fields(text)), nil
}

func (wordTokenizer) Truncate(text string, maxTokens int) (string, error) {
	fields := strings.Fields(text)
	if len(fields) <= maxTokens {
		return text, nil
	}
	lead := text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))]
	return lead + strings.Join(fields[:maxTokens], " "), nil
}
