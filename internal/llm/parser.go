package llm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Matches chatty lead-ins such as "Sure! Here is the continuation:" or "Continuation:".
	preambleRegex = regexp.MustCompile(`(?i)^(sure[!,.]?\s*)?(here(?:'s| is)[^:\n]*:|continuation\s*:|review\s*:)\s*`)
	headingRegex  = regexp.MustCompile(`(?m)^\s*#{1,6}\s+.*$\n?`)
)

// parseContinuation extracts the continuation text from a raw model reply.
// It handles several common LLM quirks:
// - Reply wrapped in ``` fences
// - A lead-in sentence before the actual text
// - The opening text echoed back before the continuation
// - Wrapping quotes and markdown headings
func parseContinuation(reply, snippet string) string {
	text := stripMarkdownFence(reply)
	text = headingRegex.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = preambleRegex.ReplaceAllString(text, "")
	text = trimQuotes(text)
	text = stripEcho(text, snippet)
	return strings.TrimRightFunc(text, unicode.IsSpace)
}

// stripEcho removes the snippet when the model repeated it at the start of its reply.
func stripEcho(text, snippet string) string {
	seed := strings.TrimSpace(snippet)
	if seed == "" {
		return text
	}
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	if len(trimmed) >= len(seed) && strings.EqualFold(trimmed[:len(seed)], seed) {
		return trimmed[len(seed):]
	}
	return text
}

func trimQuotes(s string) string {
	for _, pair := range [][2]string{{`"`, `"`}, {"“", "”"}} {
		if len(s) >= len(pair[0])+len(pair[1]) && strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
			return strings.TrimSpace(s[len(pair[0]) : len(s)-len(pair[1])])
		}
	}
	return s
}

// stripMarkdownFence removes ``` wrapping that some LLMs add around their output.
func stripMarkdownFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return s
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}

// joinContinuation appends the continuation to the snippet, inserting a space
// when neither side provides a boundary.
func joinContinuation(snippet, continuation string) string {
	if continuation == "" {
		return snippet
	}
	last, _ := utf8.DecodeLastRuneInString(snippet)
	if unicode.IsSpace(last) {
		return snippet + strings.TrimLeftFunc(continuation, unicode.IsSpace)
	}
	first, _ := utf8.DecodeRuneInString(continuation)
	if unicode.IsSpace(first) || strings.ContainsRune(".,;:!?)'’", first) {
		return snippet + continuation
	}
	return snippet + " " + continuation
}
