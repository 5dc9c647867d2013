// Package token implements WordPiece tokenization for transcript
// chunking: encode to subword tokens, decode back to readable text.
package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const unkToken = "[UNK]"

// maxWordRunes bounds the decomposition of a single word; anything longer
// is treated as unknown, matching the reference implementation.
const maxWordRunes = 200

// WordPiece tokenizes text against a fixed vocabulary. Safe for reuse
// across calls; loaded once at process start.
type WordPiece struct {
	vocab *vocab
}

// NewWordPiece loads a vocabulary file and returns a ready tokenizer.
func NewWordPiece(vocabPath string) (*WordPiece, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &WordPiece{vocab: v}, nil
}

// Encode converts text into subword tokens. Continuation subwords carry
// the "##" prefix; words not decomposable against the vocabulary become
// a single [UNK].
func (w *WordPiece) Encode(text string) []string {
	var tokens []string
	for _, word := range basicTokenize(text) {
		tokens = append(tokens, w.wordpieceWord(word)...)
	}
	return tokens
}

// Decode reconstructs text from tokens: continuation subwords are merged
// into their word, words are joined with single spaces, and special
// tokens ([UNK], [PAD], ...) are dropped. Lossy with respect to original
// casing and punctuation spacing.
func (w *WordPiece) Decode(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if isSpecial(tok) {
			continue
		}
		if cont, ok := strings.CutPrefix(tok, "##"); ok {
			b.WriteString(cont)
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(tok)
	}
	return b.String()
}

func isSpecial(tok string) bool {
	return len(tok) > 2 && tok[0] == '[' && tok[len(tok)-1] == ']'
}

// wordpieceWord decomposes one basic token into subwords by greedy
// longest-match against the vocabulary.
func (w *WordPiece) wordpieceWord(word string) []string {
	runes := []rune(word)
	if len(runes) > maxWordRunes {
		return []string{unkToken}
	}

	var subTokens []string
	start := 0
	for start < len(runes) {
		end := len(runes)
		found := false
		for end > start {
			sub := string(runes[start:end])
			if start > 0 {
				sub = "##" + sub
			}
			if w.vocab.contains(sub) {
				subTokens = append(subTokens, sub)
				found = true
				break
			}
			end--
		}
		if !found {
			return []string{unkToken}
		}
		start = end
	}
	return subTokens
}

// basicTokenize cleans, lowercases, strips accents and splits on
// whitespace and punctuation.
func basicTokenize(text string) []string {
	text = cleanText(text)
	text = strings.ToLower(text)
	text = stripAccents(text)

	var tokens []string
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, splitOnPunctuation(word)...)
	}
	return tokens
}

// cleanText removes control characters and folds all whitespace to spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == 0xFFFD || isControl(r) {
			continue
		}
		if isWhitespace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripAccents removes combining diacritical marks after NFD
// normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitOnPunctuation splits a word at each punctuation character, keeping
// the punctuation as separate tokens.
func splitOnPunctuation(word string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range word {
		if isPunctuation(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			tokens = append(tokens, string(r))
		} else {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

func isPunctuation(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
