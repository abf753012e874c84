package llm

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer measures and cuts text in model tokens.
type Tokenizer interface {
	CountTokens(text string) (int, error)
	// Truncate returns the longest prefix of text that fits in maxTokens tokens.
	Truncate(text string, maxTokens int) (string, error)
}

// vocabTokenizer adapts a HuggingFace tokenizer.json vocabulary to the Tokenizer interface.
type vocabTokenizer struct {
	mu sync.Mutex
	tk *tokenizer.Tokenizer
}

// LoadTokenizer reads a tokenizer.json file.
func LoadTokenizer(path string) (Tokenizer, error) {
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer from %s: %w", path, err)
	}
	return &vocabTokenizer{tk: tk}, nil
}

func (v *vocabTokenizer) encode(text string) ([]int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	en, err := v.tk.EncodeSingle(text)
	if err != nil {
		return nil, fmt.Errorf("failed to encode text: %w", err)
	}
	return en.Ids, nil
}

// CountTokens returns the number of tokens in text.
func (v *vocabTokenizer) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	ids, err := v.encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Truncate decodes the first maxTokens tokens of text.
func (v *vocabTokenizer) Truncate(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 || text == "" {
		return "", nil
	}
	ids, err := v.encode(text)
	if err != nil {
		return "", err
	}
	if len(ids) <= maxTokens {
		return text, nil
	}

	v.mu.Lock()
	decoded := v.tk.Decode(ids[:maxTokens], true)
	v.mu.Unlock()

	// A byte-level vocabulary can split a multi-byte rune across tokens.
	return strings.TrimRight(strings.ToValidUTF8(decoded, ""), string(utf8.RuneError)), nil
}
